package copyright

import "context"

// Resolver определяет действующую лицензию записи. Без кэша.
type Resolver struct {
	overrides OverrideStore
	settings  SettingsStore
}

func NewResolver(overrides OverrideStore, settings SettingsStore) *Resolver {
	return &Resolver{overrides: overrides, settings: settings}
}

// ResolveEffectiveLicense: лицензия записи, иначе выбор по умолчанию, иначе None
func (r *Resolver) ResolveEffectiveLicense(ctx context.Context, itemID uint) (string, error) {
	choice, ok, err := r.overrides.GetItemOverride(ctx, itemID)
	if err != nil {
		return "", &StorageError{Op: "get override", ItemID: itemID, Err: err}
	}
	if ok && choice != "" {
		return choice, nil
	}

	s, err := r.settings.GetSettings(ctx)
	if err != nil {
		return "", &StorageError{Op: "get settings", Err: err}
	}
	return s.Default(), nil
}

// ResolveLoaded: то же правило для списка записей, лицензии которых уже
// загружены одним запросом. Настройки читаются один раз.
func (r *Resolver) ResolveLoaded(ctx context.Context, itemIDs []uint, overrides map[uint]string) (map[uint]string, error) {
	s, err := r.settings.GetSettings(ctx)
	if err != nil {
		return nil, &StorageError{Op: "get settings", Err: err}
	}
	result := make(map[uint]string, len(itemIDs))
	for _, id := range itemIDs {
		result[id] = EffectiveLicense(overrides[id], s)
	}
	return result, nil
}

// EffectiveLicense: лицензия записи, если задана, иначе выбор по умолчанию
func EffectiveLicense(override string, s Settings) string {
	if override != "" && override != None {
		return override
	}
	return s.Default()
}
