package copyright

import (
	"context"
	"strings"
	"time"
)

// Действия формы «применить ко всем / снять со всех»
const (
	ActionApply  = "apply"
	ActionRemove = "none"
)

// SettingsInput: данные формы настроек
type SettingsInput struct {
	DefaultChoice   string
	AppendToContent bool
	// Переопределения описания и текста; ключи не из таблицы отбрасываются
	Licenses map[string]LicenseText
	// Лицензии, которые нужно вернуть к значениям из таблицы
	Reset []string
}

// Service собирает компоненты вместе для обработчиков
type Service struct {
	Catalog    *Catalog
	Validator  *Validator
	Resolver   *Resolver
	Applicator *Applicator
	Editor     *Editor

	settings SettingsStore
	siteName string
	now      func() time.Time
}

// Store: всё, что сервис использует из хранилища
type Store interface {
	OverrideStore
	SettingsStore
	ItemQuery
	ItemLookup
	Directory
}

func NewService(catalog *Catalog, store Store, siteName string) *Service {
	validator := NewValidator(catalog, store)
	return &Service{
		Catalog:    catalog,
		Validator:  validator,
		Resolver:   NewResolver(store, store),
		Applicator: NewApplicator(validator, store, store),
		Editor:     NewEditor(validator, store, store),
		settings:   store,
		siteName:   siteName,
		now:        time.Now,
	}
}

// WithClock подменяет текущее время (для шорткода [cp-years])
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) SiteName() string {
	return s.siteName
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return Settings{}, &StorageError{Op: "get settings", Err: err}
	}
	return settings, nil
}

// SaveSettings проверяет и сохраняет форму настроек
func (s *Service) SaveSettings(ctx context.Context, in SettingsInput) (Settings, error) {
	current, err := s.Settings(ctx)
	if err != nil {
		return Settings{}, err
	}

	next := current.clone()
	if in.DefaultChoice != "" {
		choice, err := s.Validator.ValidateLicenseChoice(in.DefaultChoice)
		if err != nil {
			return Settings{}, err
		}
		next.DefaultChoice = choice
	}
	next.AppendToContent = in.AppendToContent

	for id, lt := range in.Licenses {
		if !s.Catalog.Contains(id) {
			continue
		}
		next.Licenses[id] = LicenseText{
			Description: strings.TrimSpace(lt.Description),
			Text:        strings.TrimSpace(lt.Text),
		}
	}
	for _, id := range in.Reset {
		if def, ok := s.Catalog.Get(SanitizeKey(id)); ok {
			next.Licenses[def.ID] = LicenseText{Description: def.Description, Text: def.Text}
		}
	}

	if err := s.settings.SetSettings(ctx, next); err != nil {
		return Settings{}, &StorageError{Op: "save settings", Err: err}
	}
	return next, nil
}

// ApplyToAll: "apply" задаёт лицензию по умолчанию всем записям,
// "none" пытается снять её со всех (Applicator это запрещает)
func (s *Service) ApplyToAll(ctx context.Context, action string) (int, error) {
	switch SanitizeKey(action) {
	case ActionApply:
		settings, err := s.Settings(ctx)
		if err != nil {
			return 0, err
		}
		if settings.Default() == None {
			return 0, &ValidationError{Field: "default choice", Message: `you can't apply "none" as a choice`}
		}
		return s.Applicator.ApplyBulk(ctx, All(), settings.Default())
	case ActionRemove:
		return s.Applicator.ApplyBulk(ctx, All(), None)
	}
	return 0, &ValidationError{Field: "action", Value: action, Message: "expected apply or none"}
}

// ApplyBySelector проверяет автора/тип и лицензию, затем применяет
func (s *Service) ApplyBySelector(ctx context.Context, kind SelectorKind, rawSelector, rawChoice string) (int, error) {
	choice, err := s.Validator.ValidateLicenseChoice(rawChoice)
	if err != nil {
		return 0, err
	}
	c, err := s.Validator.ValidateSelector(ctx, kind, rawSelector)
	if err != nil {
		return 0, err
	}
	return s.Applicator.ApplyBulk(ctx, c, choice)
}

// Notice возвращает HTML уведомления для записи или "", если лицензии нет
func (s *Service) Notice(ctx context.Context, itemID uint, published time.Time) (string, error) {
	choice, err := s.Resolver.ResolveEffectiveLicense(ctx, itemID)
	if err != nil {
		return "", err
	}
	if choice == None {
		return "", nil
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return "", err
	}
	lt, ok := settings.TextFor(s.Catalog, choice)
	if !ok {
		// лицензия пропала из таблицы после смены конфигурации
		return "", nil
	}

	return RenderNotice(lt, s.Shortcodes(published)), nil
}

// Shortcodes возвращает данные для шорткодов записи с датой published
func (s *Service) Shortcodes(published time.Time) ShortcodeContext {
	return ShortcodeContext{
		SiteName:  s.siteName,
		Published: published,
		Now:       s.now(),
	}
}
