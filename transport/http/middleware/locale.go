package middleware

import (
	"context"
	"net/http"

	"lemon/config"
	"lemon/shared/constant"
	"lemon/shared/i18n"
	"lemon/shared/model"

	"github.com/go-chi/chi/v5"
)

// Locale resolves the {locale} path segment into the request context. An
// unsupported or missing locale falls back to the configured default, never
// to an error: content endpoints always have a language to render.
func Locale(translator i18n.Translator, cfg *config.Config) func(http.Handler) http.Handler {
	fallback := cfg.App.DefaultLocale
	if fallback == "" {
		fallback = model.FallbackLocale
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			locale := chi.URLParam(request, constant.RequestParamLocale)
			if !translator.Supported(locale) {
				locale = fallback
			}

			ctx := context.WithValue(request.Context(), constant.ContextKeyLocale, locale)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the resolved request locale.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(constant.ContextKeyLocale).(string)
	if locale == "" {
		return model.FallbackLocale
	}

	return locale
}
