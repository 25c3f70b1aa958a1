package copyright

import "context"

// OverrideStore: метаданные записей (ключ OverrideMetaKey)
type OverrideStore interface {
	// GetItemOverride возвращает ok=false, если лицензия не задана
	GetItemOverride(ctx context.Context, itemID uint) (licenseID string, ok bool, err error)
	SetItemOverride(ctx context.Context, itemID uint, licenseID string) error
	ClearItemOverride(ctx context.Context, itemID uint) error
}

// SettingsStore: настройки плагина. Если настроек нет, GetSettings
// возвращает нулевое значение без ошибки.
type SettingsStore interface {
	GetSettings(ctx context.Context) (Settings, error)
	SetSettings(ctx context.Context, s Settings) error
}

// SettingsLifecycle нужен только активации и удалению плагина
type SettingsLifecycle interface {
	SettingsStore
	SettingsExist(ctx context.Context) (bool, error)
	DeleteSettings(ctx context.Context) error
	DeleteWidget(ctx context.Context) error
}

// ItemLookup проверяет, что запись существует
type ItemLookup interface {
	ItemExists(ctx context.Context, itemID uint) (bool, error)
}

// ItemQuery возвращает все id записей по критерию, без ограничения количества
type ItemQuery interface {
	QueryItemIDs(ctx context.Context, c Criterion) ([]uint, error)
}

// Directory: текущие авторы и публичные типы записей сайта
type Directory interface {
	CurrentAuthorIDs(ctx context.Context) ([]uint, error)
	CurrentContentTypeNames(ctx context.Context) ([]string, error)
}
