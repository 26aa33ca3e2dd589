package i18n

import (
	"embed"
	"encoding/json"
	"strings"

	"lemon/shared/model"

	"github.com/rs/zerolog/log"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []string{model.FallbackLocale, "es"}

// Translator resolves dotted message keys (e.g. "Common.errors.conflict")
// against per-locale catalogs, falling back to English and finally to the key
// itself so a missing entry never blanks the UI.
type Translator interface {
	Translate(locale, key string, params map[string]string) string
	Supported(locale string) bool
}

type translatorImpl struct {
	catalogs map[string]map[string]string
}

func New() Translator {
	catalogs := make(map[string]map[string]string, len(supported))

	for _, locale := range supported {
		data, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			log.Fatal().Err(err).Str("locale", locale).Msg("Failed to read message catalog")
		}

		nested := map[string]any{}
		if err := json.Unmarshal(data, &nested); err != nil {
			log.Fatal().Err(err).Str("locale", locale).Msg("Failed to parse message catalog")
		}

		catalogs[locale] = flatten("", nested)
	}

	log.Info().Strs("locales", supported).Msg("Message catalogs loaded")

	return &translatorImpl{catalogs: catalogs}
}

func (t *translatorImpl) Translate(locale, key string, params map[string]string) string {
	message := t.lookup(locale, key)
	if message == "" {
		message = t.lookup(model.FallbackLocale, key)
	}

	if message == "" {
		return key
	}

	for name, value := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}

	return message
}

func (t *translatorImpl) Supported(locale string) bool {
	_, ok := t.catalogs[locale]

	return ok
}

func (t *translatorImpl) lookup(locale, key string) string {
	catalog, ok := t.catalogs[locale]
	if !ok {
		return ""
	}

	return catalog[key]
}

func flatten(prefix string, nested map[string]any) map[string]string {
	flat := map[string]string{}

	for key, value := range nested {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			flat[full] = v
		case map[string]any:
			for k, leaf := range flatten(full, v) {
				flat[k] = leaf
			}
		}
	}

	return flat
}
