package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SettingsOption = "wpcopyright_options"
	WidgetOption   = "widget_wpcopyright_widget"
)

// WidgetSettings: настройки виджета в сайдбаре
type WidgetSettings struct {
	Title string `json:"title"`
}

// Методы для настроек (таблица options)

func (r *Repository) getOption(ctx context.Context, name string, dest interface{}) (bool, error) {
	var opt ds.Option
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(opt.Value, dest); err != nil {
		return true, fmt.Errorf("option %s is corrupted: %w", name, err)
	}
	return true, nil
}

func (r *Repository) setOption(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	opt := ds.Option{Name: name, Value: datatypes.JSON(data)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&opt).Error
}

func (r *Repository) deleteOption(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Where("name = ?", name).Delete(&ds.Option{}).Error
}

// GetSettings возвращает настройки плагина; если их нет, нулевое значение
func (r *Repository) GetSettings(ctx context.Context) (copyright.Settings, error) {
	var s copyright.Settings
	if _, err := r.getOption(ctx, SettingsOption, &s); err != nil {
		return copyright.Settings{}, err
	}
	return s, nil
}

func (r *Repository) SetSettings(ctx context.Context, s copyright.Settings) error {
	return r.setOption(ctx, SettingsOption, s)
}

func (r *Repository) SettingsExist(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Option{}).Where("name = ?", SettingsOption).Count(&count).Error
	return count > 0, err
}

func (r *Repository) DeleteSettings(ctx context.Context) error {
	return r.deleteOption(ctx, SettingsOption)
}

func (r *Repository) GetWidget(ctx context.Context) (WidgetSettings, error) {
	var w WidgetSettings
	if _, err := r.getOption(ctx, WidgetOption, &w); err != nil {
		return WidgetSettings{}, err
	}
	return w, nil
}

func (r *Repository) SetWidget(ctx context.Context, w WidgetSettings) error {
	return r.setOption(ctx, WidgetOption, w)
}

func (r *Repository) DeleteWidget(ctx context.Context) error {
	return r.deleteOption(ctx, WidgetOption)
}
