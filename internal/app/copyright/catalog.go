package copyright

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// None означает «лицензия не выбрана». В хранилище никогда не пишется.
	None = "none"

	// OverrideMetaKey: ключ метаданных записи с выбранной лицензией
	OverrideMetaKey = "_wpcopyright_post_copyright_choice"
)

//go:embed default_licenses.toml
var defaultLicenses []byte

// LicenseDefinition: одна лицензия из таблицы
type LicenseDefinition struct {
	ID          string `toml:"id" json:"id"`
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	// Text может содержать шорткоды [cp-years] и [blog-title]
	Text string `toml:"text" json:"text"`
}

type catalogFile struct {
	License []LicenseDefinition `toml:"license"`
}

// Catalog: упорядоченная таблица лицензий, только для чтения после загрузки
type Catalog struct {
	defs  []LicenseDefinition
	index map[string]int
}

// NewCatalog проверяет таблицу и строит индекс
func NewCatalog(defs []LicenseDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, errors.New("license catalog is empty")
	}

	c := &Catalog{
		defs:  make([]LicenseDefinition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("license #%d: empty id", i)
		}
		if SanitizeKey(def.ID) != def.ID {
			return nil, fmt.Errorf("license %q: id may only contain lowercase letters, digits, '_' and '-'", def.ID)
		}
		if def.ID == None {
			return nil, fmt.Errorf("license id %q is reserved", None)
		}
		if def.Title == "" {
			return nil, fmt.Errorf("license %q: empty title", def.ID)
		}
		if _, dup := c.index[def.ID]; dup {
			return nil, fmt.Errorf("license %q: duplicate id", def.ID)
		}
		c.index[def.ID] = len(c.defs)
		c.defs = append(c.defs, def)
	}

	return c, nil
}

// ParseCatalog разбирает TOML с массивом [[license]]
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse license catalog: %w", err)
	}
	return NewCatalog(file.License)
}

// LoadCatalog читает таблицу лицензий из файла
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read license catalog: %w", err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog возвращает встроенную таблицу лицензий
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultLicenses)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(id string) (LicenseDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return LicenseDefinition{}, false
	}
	return c.defs[i], true
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IDs возвращает идентификаторы в порядке таблицы
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.defs))
	for i, def := range c.defs {
		ids[i] = def.ID
	}
	return ids
}

// All возвращает копию таблицы
func (c *Catalog) All() []LicenseDefinition {
	defs := make([]LicenseDefinition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

func (c *Catalog) Len() int {
	return len(c.defs)
}

// Title возвращает название лицензии или "None"
func (c *Catalog) Title(id string) string {
	if def, ok := c.Get(id); ok {
		return def.Title
	}
	return "None"
}
