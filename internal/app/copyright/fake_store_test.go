package copyright

import (
	"context"
	"errors"
	"sort"
)

type fakeItem struct {
	id       uint
	authorID uint
	typeName string
}

// fakeStore: хранилище в памяти для тестов пакета
type fakeStore struct {
	items     []fakeItem
	overrides map[uint]string
	settings  *Settings
	widget    string
	authors   []uint
	types     []string

	// failAfter > 0: запись номер failAfter+1 вернёт ошибку
	failAfter int
	writes    int
	queryErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		overrides: map[uint]string{},
		authors:   []uint{1, 2},
		types:     []string{"post", "page"},
	}
}

func (f *fakeStore) addItem(id, authorID uint, typeName string) {
	f.items = append(f.items, fakeItem{id: id, authorID: authorID, typeName: typeName})
}

var errStorageDown = errors.New("storage down")

func (f *fakeStore) write() error {
	if f.failAfter > 0 && f.writes >= f.failAfter {
		return errStorageDown
	}
	f.writes++
	return nil
}

func (f *fakeStore) GetItemOverride(_ context.Context, itemID uint) (string, bool, error) {
	v, ok := f.overrides[itemID]
	return v, ok, nil
}

func (f *fakeStore) SetItemOverride(_ context.Context, itemID uint, licenseID string) error {
	if err := f.write(); err != nil {
		return err
	}
	f.overrides[itemID] = licenseID
	return nil
}

func (f *fakeStore) ClearItemOverride(_ context.Context, itemID uint) error {
	if err := f.write(); err != nil {
		return err
	}
	delete(f.overrides, itemID)
	return nil
}

func (f *fakeStore) GetSettings(context.Context) (Settings, error) {
	if f.settings == nil {
		return Settings{}, nil
	}
	return *f.settings, nil
}

func (f *fakeStore) SetSettings(_ context.Context, s Settings) error {
	f.settings = &s
	return nil
}

func (f *fakeStore) SettingsExist(context.Context) (bool, error) {
	return f.settings != nil, nil
}

func (f *fakeStore) DeleteSettings(context.Context) error {
	f.settings = nil
	return nil
}

func (f *fakeStore) DeleteWidget(context.Context) error {
	f.widget = ""
	return nil
}

func (f *fakeStore) QueryItemIDs(_ context.Context, c Criterion) ([]uint, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var ids []uint
	for _, it := range f.items {
		switch c.Scope {
		case ScopeAuthor:
			if it.authorID != c.AuthorID {
				continue
			}
		case ScopeType:
			if it.typeName != c.TypeName {
				continue
			}
		}
		ids = append(ids, it.id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeStore) ItemExists(_ context.Context, itemID uint) (bool, error) {
	for _, it := range f.items {
		if it.id == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CurrentAuthorIDs(context.Context) ([]uint, error) {
	return f.authors, nil
}

func (f *fakeStore) CurrentContentTypeNames(context.Context) ([]string, error) {
	return f.types, nil
}
