package domain

// Lang identifies one of the two content languages every record may carry.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

// Field names the two localizable fields of a record.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
)

// LanguageContent is the per-language translation of a record's name and
// description. Either field may be empty; an empty field is treated the same
// as an absent one when resolving.
type LanguageContent struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageMap holds the optional en/ar translations of a record.
type LanguageMap struct {
	EN *LanguageContent `json:"en,omitempty"`
	AR *LanguageContent `json:"ar,omitempty"`
}

func (m *LanguageMap) content(code Lang) *LanguageContent {
	if m == nil {
		return nil
	}
	switch code {
	case LangEN:
		return m.EN
	case LangAR:
		return m.AR
	}
	return nil
}

// Resolve returns the localized value for code/field when it exists and is
// non-empty, else the root value. There is no chained fallback across
// languages: requesting "ar" never falls back to "en", only to root.
func (m *LanguageMap) Resolve(code Lang, field Field, root string) string {
	c := m.content(code)
	if c == nil {
		return root
	}
	var v string
	switch field {
	case FieldName:
		v = c.Name
	case FieldDescription:
		v = c.Description
	}
	if v == "" {
		return root
	}
	return v
}

// AssembleBilingual builds a LanguageMap from the four admin-form fields.
// Callers are expected to have substituted the record's root name/description
// for any field the editor left blank; ApplyLanguageDefaults does the same
// substitution server-side.
func AssembleBilingual(enName, enDescription, arName, arDescription string) *LanguageMap {
	return &LanguageMap{
		EN: &LanguageContent{Name: enName, Description: enDescription},
		AR: &LanguageContent{Name: arName, Description: arDescription},
	}
}

// ApplyLanguageDefaults returns a copy of m in which both en and ar entries
// exist and every empty name/description is filled with the record's root
// value. Run whenever a record is created or its name/description changes so
// the bilingual-default invariant holds.
func ApplyLanguageDefaults(m *LanguageMap, name, description string) *LanguageMap {
	out := &LanguageMap{}
	if m != nil {
		if m.EN != nil {
			c := *m.EN
			out.EN = &c
		}
		if m.AR != nil {
			c := *m.AR
			out.AR = &c
		}
	}
	if out.EN == nil {
		out.EN = &LanguageContent{}
	}
	if out.AR == nil {
		out.AR = &LanguageContent{}
	}
	if out.EN.Name == "" {
		out.EN.Name = name
	}
	if out.EN.Description == "" {
		out.EN.Description = description
	}
	if out.AR.Name == "" {
		out.AR.Name = name
	}
	if out.AR.Description == "" {
		out.AR.Description = description
	}
	return out
}
