package hooks

import (
	"context"
	"time"
)

// Stage: точка расширения, в которой вызываются обработчики
type Stage string

const (
	StageContent Stage = "the_content"
	StageWidget  Stage = "widgets"
	StageSave    Stage = "save_post"
)

// View описывает отрисовываемую страницу
type View struct {
	PostID    uint
	Published time.Time
	// Single: страница одной записи, а не лента
	Single bool
}

// ContentFilter дописывает что-то к тексту записи
type ContentFilter interface {
	FilterContent(ctx context.Context, view View, content string) (string, error)
}

// WidgetRenderer отрисовывает виджет боковой панели
type WidgetRenderer interface {
	RenderWidget(ctx context.Context, view View, args WidgetArgs) (string, error)
}

// SaveHook вызывается при сохранении записи из редактора
type SaveHook interface {
	OnSave(ctx context.Context, postID uint, choice string) error
}

// WidgetArgs: обёртка вокруг виджета, которую задаёт тема
type WidgetArgs struct {
	BeforeWidget string
	AfterWidget  string
	BeforeTitle  string
	AfterTitle   string
}

// DefaultWidgetArgs: разметка боковой панели по умолчанию
var DefaultWidgetArgs = WidgetArgs{
	BeforeWidget: `<section class="widget wpcopyright_widget">`,
	AfterWidget:  "</section>",
	BeforeTitle:  `<h2 class="widget-title">`,
	AfterTitle:   "</h2>",
}

// Registry вызывает зарегистрированные обработчики в порядке добавления
type Registry struct {
	filters []ContentFilter
	widgets []WidgetRenderer
	savers  []SaveHook
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) AddContentFilter(f ContentFilter) *Registry {
	r.filters = append(r.filters, f)
	return r
}

func (r *Registry) AddWidget(w WidgetRenderer) *Registry {
	r.widgets = append(r.widgets, w)
	return r
}

func (r *Registry) AddSaveHook(h SaveHook) *Registry {
	r.savers = append(r.savers, h)
	return r
}

// Stages возвращает число обработчиков на каждой стадии
func (r *Registry) Stages() map[Stage]int {
	return map[Stage]int{
		StageContent: len(r.filters),
		StageWidget:  len(r.widgets),
		StageSave:    len(r.savers),
	}
}

// FilterContent пропускает текст через все фильтры по цепочке
func (r *Registry) FilterContent(ctx context.Context, view View, content string) (string, error) {
	var err error
	for _, f := range r.filters {
		content, err = f.FilterContent(ctx, view, content)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// RenderSidebar склеивает вывод всех виджетов
func (r *Registry) RenderSidebar(ctx context.Context, view View, args WidgetArgs) (string, error) {
	var out string
	for _, w := range r.widgets {
		html, err := w.RenderWidget(ctx, view, args)
		if err != nil {
			return "", err
		}
		out += html
	}
	return out, nil
}

// SavePost передаёт выбор из редактора всем обработчикам сохранения
func (r *Registry) SavePost(ctx context.Context, postID uint, choice string) error {
	for _, h := range r.savers {
		if err := h.OnSave(ctx, postID, choice); err != nil {
			return err
		}
	}
	return nil
}
