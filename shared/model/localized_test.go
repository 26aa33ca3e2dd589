package model_test

import (
	"encoding/json"
	"testing"

	"lemon/shared/model"
)

func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		text   model.LocalizedText
		locale string
		field  string
		want   string
	}{
		{
			name: "requested locale present",
			text: model.LocalizedText{
				"en": {Name: "Greek Salad"},
				"es": {Name: "Ensalada Griega"},
			},
			locale: "es",
			field:  model.LocalizedFieldName,
			want:   "Ensalada Griega",
		},
		{
			name: "missing locale falls back to english",
			text: model.LocalizedText{
				"en": {Name: "Greek Salad"},
			},
			locale: "es",
			field:  model.LocalizedFieldName,
			want:   "Greek Salad",
		},
		{
			name: "empty value falls back to english",
			text: model.LocalizedText{
				"en": {Name: "Greek Salad"},
				"es": {Name: ""},
			},
			locale: "es",
			field:  model.LocalizedFieldName,
			want:   "Greek Salad",
		},
		{
			name:   "name missing everywhere falls back to literal",
			text:   model.LocalizedText{},
			locale: "es",
			field:  model.LocalizedFieldName,
			want:   model.FallbackName,
		},
		{
			name:   "description missing everywhere is empty",
			text:   model.LocalizedText{},
			locale: "es",
			field:  model.LocalizedFieldDescription,
			want:   "",
		},
		{
			name:   "nil map name",
			text:   nil,
			locale: "en",
			field:  model.LocalizedFieldName,
			want:   model.FallbackName,
		},
		{
			name: "unknown field is empty",
			text: model.LocalizedText{
				"en": {Name: "Greek Salad"},
			},
			locale: "en",
			field:  "price",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Resolve(tt.locale, tt.field); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.locale, tt.field, got, tt.want)
			}
		})
	}
}

func TestLocalizedText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName map[string]string
	}{
		{
			name:     "well formed",
			input:    `{"en":{"name":"Bruschetta"},"es":{"name":"Bruschetta española"}}`,
			wantName: map[string]string{"en": "Bruschetta", "es": "Bruschetta española"},
		},
		{
			name:     "malformed locale entry is dropped",
			input:    `{"en":{"name":"Bruschetta"},"es":"not an object"}`,
			wantName: map[string]string{"en": "Bruschetta"},
		},
		{
			name:     "whole value malformed yields empty map",
			input:    `"just a string"`,
			wantName: map[string]string{},
		},
		{
			name:     "array yields empty map",
			input:    `[1,2,3]`,
			wantName: map[string]string{},
		},
		{
			name:     "unexpected field types drop the locale",
			input:    `{"en":{"name":123}}`,
			wantName: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text model.LocalizedText

			if err := json.Unmarshal([]byte(tt.input), &text); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(text) != len(tt.wantName) {
				t.Fatalf("expected %d locales, got %d", len(tt.wantName), len(text))
			}

			for locale, wantName := range tt.wantName {
				if text[locale].Name != wantName {
					t.Errorf("locale %q name = %q, want %q", locale, text[locale].Name, wantName)
				}
			}
		})
	}
}

func TestLocalizedText_ScanAndValue(t *testing.T) {
	var text model.LocalizedText

	if err := text.Scan([]byte(`{"en":{"name":"Lemon Dessert","description":"House favorite"}}`)); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	if text.ResolveName("en") != "Lemon Dessert" {
		t.Errorf("expected scanned name, got %q", text.ResolveName("en"))
	}

	if err := text.Scan(nil); err != nil {
		t.Fatalf("unexpected scan error for nil: %v", err)
	}

	if len(text) != 0 {
		t.Errorf("expected empty map after nil scan, got %v", text)
	}

	var nilText model.LocalizedText

	value, err := nilText.Value()
	if err != nil {
		t.Fatalf("unexpected value error: %v", err)
	}

	if string(value.([]byte)) != "{}" {
		t.Errorf("expected empty object for nil map, got %s", value)
	}
}

func TestLocalizedText_ResolveShorthands(t *testing.T) {
	text := model.LocalizedText{
		"en": {Name: "Grilled Fish", Description: "Catch of the day"},
	}

	if got := text.ResolveName("es"); got != "Grilled Fish" {
		t.Errorf("ResolveName = %q", got)
	}

	if got := text.ResolveDescription("es"); got != "Catch of the day" {
		t.Errorf("ResolveDescription = %q", got)
	}
}
