package api

import (
	"context"
	"errors"

	"wpcopyright/internal/app/config"
	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/storage"

	"github.com/sirupsen/logrus"
)

// CatalogObjects читает таблицу лицензий из объектного хранилища
type CatalogObjects interface {
	LoadCatalog(ctx context.Context, object string) (*copyright.Catalog, error)
}

// LoadCatalog выбирает источник таблицы лицензий: объект в MinIO,
// локальный файл или встроенная таблица. Если объекта ещё нет в bucket,
// используются следующие источники.
func LoadCatalog(ctx context.Context, cfg *config.Config, objects CatalogObjects) (*copyright.Catalog, error) {
	if cfg.CatalogObject != "" && objects != nil {
		catalog, err := objects.LoadCatalog(ctx, cfg.CatalogObject)
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return catalog, err
		}
		logrus.Warnf("CatalogObject %s not found in bucket", cfg.CatalogObject)
	}

	if cfg.CatalogPath != "" {
		catalog, err := copyright.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("License catalog loaded from %s (%d licenses)", cfg.CatalogPath, catalog.Len())
		return catalog, nil
	}

	if cfg.CatalogObject != "" && objects == nil {
		logrus.Warnf("CatalogObject %s is set but MinIO is not configured, using built-in licenses", cfg.CatalogObject)
	}
	return copyright.DefaultCatalog(), nil
}
