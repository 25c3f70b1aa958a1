package copyright

import (
	"context"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type SelectorKind string

const (
	SelectorAuthor SelectorKind = "author"
	SelectorType   SelectorKind = "type"
)

// SanitizeKey оставляет только строчные латинские буквы, цифры, '_' и '-'
func SanitizeKey(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

var stripTags = bluemonday.StrictPolicy()

// SanitizeText убирает теги, управляющие символы и лишние пробелы.
// Результат не экранирован.
func SanitizeText(raw string) string {
	text := html.UnescapeString(stripTags.Sanitize(raw))
	text = strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f {
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// Validator проверяет ввод перед любым изменением данных
type Validator struct {
	catalog   *Catalog
	directory Directory
}

func NewValidator(catalog *Catalog, directory Directory) *Validator {
	return &Validator{catalog: catalog, directory: directory}
}

func (v *Validator) Catalog() *Catalog {
	return v.catalog
}

// ValidateLicenseChoice возвращает id лицензии из таблицы или None
func (v *Validator) ValidateLicenseChoice(raw string) (string, error) {
	choice := SanitizeKey(raw)
	if choice == None || v.catalog.Contains(choice) {
		return choice, nil
	}
	return "", &ValidationError{Field: "license", Value: raw, Message: "not a known license"}
}

// ValidateSelector проверяет автора или тип записи по текущим спискам сайта.
// Списки запрашиваются при каждом вызове.
func (v *Validator) ValidateSelector(ctx context.Context, kind SelectorKind, raw string) (Criterion, error) {
	value := SanitizeText(raw)

	switch kind {
	case SelectorAuthor:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return Criterion{}, &ValidationError{Field: "author", Value: raw, Message: "not an author id"}
		}
		authors, err := v.directory.CurrentAuthorIDs(ctx)
		if err != nil {
			return Criterion{}, &StorageError{Op: "list authors", Err: err}
		}
		for _, a := range authors {
			if uint64(a) == id {
				return ByAuthor(a), nil
			}
		}
		return Criterion{}, &ValidationError{Field: "author", Value: raw, Message: "no such author"}

	case SelectorType:
		types, err := v.directory.CurrentContentTypeNames(ctx)
		if err != nil {
			return Criterion{}, &StorageError{Op: "list content types", Err: err}
		}
		for _, t := range types {
			if t == value {
				return ByType(t), nil
			}
		}
		return Criterion{}, &ValidationError{Field: "type", Value: raw, Message: "no such public content type"}
	}

	return Criterion{}, &ValidationError{Field: "selector", Value: string(kind), Message: "the value from this input was found to be incorrect"}
}
