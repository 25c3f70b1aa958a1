package copyright

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Activate создаёт настройки по умолчанию, если их ещё нет.
// Возвращает true, если настройки созданы.
func Activate(ctx context.Context, store SettingsLifecycle, catalog *Catalog) (bool, error) {
	exists, err := store.SettingsExist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check settings: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := store.SetSettings(ctx, DefaultSettings(catalog)); err != nil {
		return false, fmt.Errorf("failed to create settings: %w", err)
	}
	logrus.Info("default copyright settings created")
	return true, nil
}

// Uninstall удаляет настройки и настройки виджета
func Uninstall(ctx context.Context, store SettingsLifecycle) error {
	if err := store.DeleteSettings(ctx); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	if err := store.DeleteWidget(ctx); err != nil {
		return fmt.Errorf("failed to delete widget settings: %w", err)
	}
	logrus.Info("copyright settings removed")
	return nil
}
