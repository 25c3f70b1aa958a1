package copyright

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Editor сохраняет выбор лицензии для отдельных записей
// (форма записи, быстрое и массовое редактирование)
type Editor struct {
	validator *Validator
	overrides OverrideStore
	items     ItemLookup
}

func NewEditor(validator *Validator, overrides OverrideStore, items ItemLookup) *Editor {
	return &Editor{validator: validator, overrides: overrides, items: items}
}

// exists возвращает ErrNoMatch для несуществующей записи
func (e *Editor) exists(ctx context.Context, itemID uint) error {
	ok, err := e.items.ItemExists(ctx, itemID)
	if err != nil {
		return &StorageError{Op: "find item", ItemID: itemID, Err: err}
	}
	if !ok {
		return fmt.Errorf("item %d: %w", itemID, ErrNoMatch)
	}
	return nil
}

// SavePost: None снимает лицензию, любое другое значение из таблицы задаёт её.
// Пустой выбор означает «без изменений».
func (e *Editor) SavePost(ctx context.Context, itemID uint, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	choice, err := e.validator.ValidateLicenseChoice(raw)
	if err != nil {
		return err
	}
	if err := e.exists(ctx, itemID); err != nil {
		return err
	}

	if choice == None {
		err = e.overrides.ClearItemOverride(ctx, itemID)
	} else {
		err = e.overrides.SetItemOverride(ctx, itemID, choice)
	}
	if err != nil {
		return &StorageError{Op: "save override", ItemID: itemID, Err: err}
	}
	return nil
}

// RemovePost снимает лицензию при выборе "none" или "remove"
func (e *Editor) RemovePost(ctx context.Context, itemID uint, raw string) error {
	switch SanitizeKey(raw) {
	case None, "remove":
	default:
		return nil
	}
	if err := e.exists(ctx, itemID); err != nil {
		return err
	}
	if err := e.overrides.ClearItemOverride(ctx, itemID); err != nil {
		return &StorageError{Op: "remove override", ItemID: itemID, Err: err}
	}
	return nil
}

// BulkEdit применяет SavePost к списку id. Нецифровые id и id
// несуществующих записей пропускаются.
// Возвращает число обработанных записей.
func (e *Editor) BulkEdit(ctx context.Context, rawIDs []string, raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	if _, err := e.validator.ValidateLicenseChoice(raw); err != nil {
		return 0, err
	}

	done := 0
	for _, rawID := range rawIDs {
		if !isDigits(rawID) {
			continue
		}
		id, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil || id == 0 {
			continue
		}
		if err := e.SavePost(ctx, uint(id), raw); err != nil {
			if errors.Is(err, ErrNoMatch) {
				continue
			}
			if se, ok := err.(*StorageError); ok {
				se.Applied = done
			}
			return done, err
		}
		done++
	}
	return done, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
