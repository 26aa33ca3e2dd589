package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	FallbackLocale = "en"

	LocalizedFieldName        = "name"
	LocalizedFieldDescription = "description"

	// FallbackName is shown when an entity has no usable name in any locale.
	FallbackName = "Unnamed Item"
)

// LocalizedFields is the per-locale text attached to a display entity.
type LocalizedFields struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// LocalizedText maps a locale code to its text fields. It is stored as jsonb
// and may be malformed upstream; decoding tolerates any shape by treating
// unreadable entries as missing locales.
type LocalizedText map[string]LocalizedFields

// UnmarshalJSON decodes each locale entry independently so that a single
// malformed value (for example a bare string where an object was expected)
// drops only that locale instead of failing the whole map.
func (l *LocalizedText) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = LocalizedText{}

		return nil
	}

	out := make(LocalizedText, len(raw))

	for locale, entry := range raw {
		fields := LocalizedFields{}
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}

		out[locale] = fields
	}

	*l = out

	return nil
}

// Scan implements sql.Scanner for jsonb columns.
func (l *LocalizedText) Scan(src any) error {
	if src == nil {
		*l = LocalizedText{}

		return nil
	}

	switch value := src.(type) {
	case []byte:
		return l.UnmarshalJSON(value)
	case string:
		return l.UnmarshalJSON([]byte(value))
	default:
		return fmt.Errorf("unsupported source type %T for localized text", src)
	}
}

// Value implements driver.Valuer for jsonb columns.
func (l LocalizedText) Value() (driver.Value, error) {
	if l == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(map[string]LocalizedFields(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal localized text: %w", err)
	}

	return data, nil
}

// Resolve returns the requested field for the requested locale, falling back
// to English and finally to a fixed literal ("Unnamed Item" for names, empty
// for descriptions). It never fails regardless of the stored shape.
func (l LocalizedText) Resolve(locale, field string) string {
	for _, loc := range []string{locale, FallbackLocale} {
		if value := l.field(loc, field); value != "" {
			return value
		}
	}

	if field == LocalizedFieldName {
		return FallbackName
	}

	return ""
}

// ResolveName is shorthand for Resolve(locale, "name").
func (l LocalizedText) ResolveName(locale string) string {
	return l.Resolve(locale, LocalizedFieldName)
}

// ResolveDescription is shorthand for Resolve(locale, "description").
func (l LocalizedText) ResolveDescription(locale string) string {
	return l.Resolve(locale, LocalizedFieldDescription)
}

func (l LocalizedText) field(locale, field string) string {
	fields, ok := l[locale]
	if !ok {
		return ""
	}

	switch field {
	case LocalizedFieldName:
		return fields.Name
	case LocalizedFieldDescription:
		return fields.Description
	default:
		return ""
	}
}
