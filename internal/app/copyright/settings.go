package copyright

// LicenseText: описание и текст лицензии, переопределённые на сайте
type LicenseText struct {
	Description string `json:"description"`
	Text        string `json:"text"`
}

// Settings: настройки плагина, хранятся одной записью
type Settings struct {
	DefaultChoice   string                 `json:"default_choice"`
	AppendToContent bool                   `json:"append_to_content"`
	Licenses        map[string]LicenseText `json:"licenses"`
}

// DefaultSettings: настройки, создаваемые при активации
func DefaultSettings(c *Catalog) Settings {
	s := Settings{
		DefaultChoice: None,
		Licenses:      make(map[string]LicenseText, c.Len()),
	}
	for _, def := range c.All() {
		s.Licenses[def.ID] = LicenseText{Description: def.Description, Text: def.Text}
	}
	return s
}

// Default возвращает выбор по умолчанию; пустое значение считается None
func (s Settings) Default() string {
	if s.DefaultChoice == "" {
		return None
	}
	return s.DefaultChoice
}

// TextFor возвращает описание и текст лицензии с учётом переопределений.
// ok=false, если лицензии нет в таблице.
func (s Settings) TextFor(c *Catalog, id string) (LicenseText, bool) {
	def, ok := c.Get(id)
	if !ok {
		return LicenseText{}, false
	}
	if lt, ok := s.Licenses[id]; ok {
		return lt, true
	}
	return LicenseText{Description: def.Description, Text: def.Text}, true
}

func (s Settings) clone() Settings {
	out := s
	out.Licenses = make(map[string]LicenseText, len(s.Licenses))
	for k, v := range s.Licenses {
		out.Licenses[k] = v
	}
	return out
}
