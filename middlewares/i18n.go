package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/logger"
)

type (
	translatorKey struct{}
	languageKey   struct{}
)

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Extractor    Extractor
	extractorSet bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nExtractor sets a custom language extractor chain.
func WithI18nExtractor(ext Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// FromAcceptLanguage returns an ExtractorSource that parses the Accept-Language
// header and matches against the available languages.
func FromAcceptLanguage(available []string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// I18n returns middleware that resolves the request language, creates a
// Translator bound to it, and stores both in the request context.
// Values that name no loaded locale are matched to the closest one. When
// nothing matches, a non-strict store gets its default locale and a strict
// store keeps the requested value, so lookups fail with LocaleNotLoadedError.
// Content-Language is set only for loaded locales.
func I18n(store *i18n.Store, opts ...I18nOption) func(http.Handler) http.Handler {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default extractor: query -> cookie -> accept-language
	if !cfg.extractorSet {
		cfg.Extractor = NewExtractor(
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(store.Languages()),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := cfg.Extractor.Extract(r)
			switch {
			case !ok:
				lang = store.DefaultLanguage()
			case !store.HasLanguage(lang):
				if match, found := i18n.MatchLanguage(lang, store.Languages()); found {
					lang = match
				} else if !store.Strict() {
					lang = store.DefaultLanguage()
				}
			}

			ctx := context.WithValue(r.Context(), languageKey{}, lang)
			tr := i18n.NewTranslator(store, lang).WithContext(ctx)
			ctx = context.WithValue(ctx, translatorKey{}, tr)

			if store.HasLanguage(lang) {
				w.Header().Set("Content-Language", lang)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(ctx context.Context) *i18n.Translator {
	if v, ok := ctx.Value(translatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// GetLanguage extracts the resolved language from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLanguage(ctx context.Context) string {
	if v, ok := ctx.Value(languageKey{}).(string); ok {
		return v
	}
	return ""
}

// LanguageExtractor returns a ContextExtractor that adds "locale" to log entries.
func LanguageExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := GetLanguage(ctx); v != "" {
			return slog.String("locale", v), true
		}
		return slog.Attr{}, false
	}
}
