package repository

import (
	"context"
	"errors"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Методы для метаданных записей

// GetItemOverride возвращает лицензию записи, ok=false если её нет
func (r *Repository) GetItemOverride(ctx context.Context, itemID uint) (string, bool, error) {
	var meta ds.PostMeta
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND meta_key = ?", itemID, copyright.OverrideMetaKey).
		First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return meta.MetaValue, meta.MetaValue != "", nil
}

// SetItemOverride вставляет или обновляет лицензию записи
func (r *Repository) SetItemOverride(ctx context.Context, itemID uint, licenseID string) error {
	meta := ds.PostMeta{
		PostID:    itemID,
		MetaKey:   copyright.OverrideMetaKey,
		MetaValue: licenseID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "meta_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"meta_value"}),
	}).Create(&meta).Error
}

// ClearItemOverride удаляет лицензию записи (отсутствие, не ошибка)
func (r *Repository) ClearItemOverride(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND meta_key = ?", itemID, copyright.OverrideMetaKey).
		Delete(&ds.PostMeta{}).Error
}

// GetOverrides возвращает лицензии для набора записей (для списка в админке)
func (r *Repository) GetOverrides(ctx context.Context, itemIDs []uint) (map[uint]string, error) {
	result := make(map[uint]string, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	var metas []ds.PostMeta
	err := r.db.WithContext(ctx).
		Where("post_id IN ? AND meta_key = ?", itemIDs, copyright.OverrideMetaKey).
		Find(&metas).Error
	if err != nil {
		return nil, err
	}
	for _, m := range metas {
		result[m.PostID] = m.MetaValue
	}
	return result, nil
}
