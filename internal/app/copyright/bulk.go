package copyright

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Applicator задаёт или снимает лицензию у множества записей
type Applicator struct {
	validator *Validator
	items     ItemQuery
	overrides OverrideStore
}

func NewApplicator(validator *Validator, items ItemQuery, overrides OverrideStore) *Applicator {
	return &Applicator{validator: validator, items: items, overrides: overrides}
}

// ApplyBulk применяет target ко всем записям по критерию и возвращает число
// изменённых записей. Критерий должен прийти из Validator.ValidateSelector
// (или быть All).
//
// Применение не атомарно: если хранилище падает посередине, уже
// обработанные записи остаются изменёнными, остальные не трогаются.
// В этом случае возвращается *StorageError с числом Applied.
//
// Снять лицензию сразу со всех записей нельзя (All + None), а с записей
// одного автора или одного типа можно.
func (a *Applicator) ApplyBulk(ctx context.Context, c Criterion, target string) (int, error) {
	choice, err := a.validator.ValidateLicenseChoice(target)
	if err != nil {
		return 0, err
	}
	if c.Scope == ScopeAll && choice == None {
		return 0, &ValidationError{Field: "license", Value: target, Message: "removing the notice from every item at once is not allowed"}
	}

	ids, err := a.items.QueryItemIDs(ctx, c)
	if err != nil {
		return 0, &StorageError{Op: "query items", Err: err}
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoMatch, c)
	}

	applied := 0
	for _, id := range ids {
		if choice == None {
			err = a.overrides.ClearItemOverride(ctx, id)
		} else {
			err = a.overrides.SetItemOverride(ctx, id, choice)
		}
		if err != nil {
			logrus.Warnf("bulk %s stopped at item %d after %d of %d items: %v", c, id, applied, len(ids), err)
			return applied, &StorageError{Op: "apply " + choice, ItemID: id, Applied: applied, Err: err}
		}
		applied++
	}

	logrus.Infof("bulk %s: %s applied to %d items", c, choice, applied)
	return applied, nil
}
