package repository

import (
	"fmt"

	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	_ copyright.Store             = (*Repository)(nil)
	_ copyright.SettingsLifecycle = (*Repository)(nil)
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return NewWithDB(db)
}

// NewWithDB создаёт репозиторий поверх готового соединения и мигрирует таблицы
func NewWithDB(db *gorm.DB) (*Repository, error) {
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

// Migrate: автоматическая миграция всех таблиц
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ds.User{},
		&ds.PostType{},
		&ds.Post{},
		&ds.PostMeta{},
		&ds.Option{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}
