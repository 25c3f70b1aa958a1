package repository

import (
	"context"

	"wpcopyright/internal/app/ds"
)

// Методы для типов записей

// CurrentContentTypeNames: имена публичных типов записей
func (r *Repository) CurrentContentTypeNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&ds.PostType{}).
		Where("public = ?", true).
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

// ListPublicPostTypes: публичные типы с подписями для формы настроек
func (r *Repository) ListPublicPostTypes(ctx context.Context) ([]ds.PostType, error) {
	var types []ds.PostType
	err := r.db.WithContext(ctx).Where("public = ?", true).Order("name").Find(&types).Error
	return types, err
}

// SavePostType регистрирует тип записи
func (r *Repository) SavePostType(ctx context.Context, t *ds.PostType) error {
	return r.db.WithContext(ctx).Save(t).Error
}
