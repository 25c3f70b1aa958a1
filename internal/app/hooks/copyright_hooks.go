package hooks

import (
	"context"
	"html"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/repository"
)

// NoticeFilter добавляет уведомление в конец записи,
// если это включено в настройках и открыта страница одной записи
type NoticeFilter struct {
	Service *copyright.Service
}

func (f NoticeFilter) FilterContent(ctx context.Context, view View, content string) (string, error) {
	if !view.Single {
		return content, nil
	}
	settings, err := f.Service.Settings(ctx)
	if err != nil {
		return "", err
	}
	if !settings.AppendToContent {
		return content, nil
	}

	notice, err := f.Service.Notice(ctx, view.PostID, view.Published)
	if err != nil {
		return "", err
	}
	return content + notice, nil
}

// WidgetStore хранит настройки виджета
type WidgetStore interface {
	GetWidget(ctx context.Context) (repository.WidgetSettings, error)
}

// Widget показывает заголовок и уведомление текущей записи в боковой панели
type Widget struct {
	Service *copyright.Service
	Store   WidgetStore
}

func (w Widget) RenderWidget(ctx context.Context, view View, args WidgetArgs) (string, error) {
	if !view.Single {
		return "", nil
	}
	settings, err := w.Store.GetWidget(ctx)
	if err != nil {
		return "", &copyright.StorageError{Op: "get widget", Err: err}
	}

	out := args.BeforeWidget
	if title := copyright.SanitizeText(settings.Title); title != "" {
		title = copyright.ExpandShortcodes(title, w.Service.Shortcodes(view.Published))
		out += args.BeforeTitle + html.EscapeString(title) + args.AfterTitle
	}

	notice, err := w.Service.Notice(ctx, view.PostID, view.Published)
	if err != nil {
		return "", err
	}
	out += notice + args.AfterWidget
	return out, nil
}

// ChoiceSaver сохраняет выбор лицензии из формы записи
type ChoiceSaver struct {
	Editor *copyright.Editor
}

func (s ChoiceSaver) OnSave(ctx context.Context, postID uint, choice string) error {
	return s.Editor.SavePost(ctx, postID, choice)
}

// Register подключает обработчики лицензий к реестру
func Register(r *Registry, svc *copyright.Service, widgets WidgetStore) *Registry {
	return r.
		AddContentFilter(NoticeFilter{Service: svc}).
		AddWidget(Widget{Service: svc, Store: widgets}).
		AddSaveHook(ChoiceSaver{Editor: svc.Editor})
}
