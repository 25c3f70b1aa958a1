package copyright

import (
	"errors"
	"fmt"
)

// ErrNoMatch: выборка для массового применения пуста
var ErrNoMatch = errors.New("no matching items")

// ValidationError: ввод отклонён до каких-либо изменений
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// StorageError: ошибка хранилища. Applied показывает, сколько записей
// массового применения уже изменено (они не откатываются).
type StorageError struct {
	Op      string
	ItemID  uint
	Applied int
	Err     error
}

func (e *StorageError) Error() string {
	if e.ItemID != 0 {
		return fmt.Sprintf("%s item %d (applied %d): %v", e.Op, e.ItemID, e.Applied, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
