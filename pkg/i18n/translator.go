package i18n

import "context"

// Translator binds a Store to one locale and returns plain strings.
// Lookups that do not produce a string return the path itself, so missing
// translations stay visible in rendered output.
type Translator struct {
	ctx    context.Context
	store  *Store
	locale string
}

// NewTranslator creates a Translator for locale.
// If locale is empty, it defaults to the Store's default locale.
func NewTranslator(store *Store, locale string) *Translator {
	if store == nil {
		panic("i18n: store is not provided")
	}
	if locale == "" {
		locale = store.DefaultLanguage()
	}
	return &Translator{ctx: context.Background(), store: store, locale: locale}
}

// WithContext returns a copy of the Translator whose lookups report
// diagnostics with ctx.
func (t *Translator) WithContext(ctx context.Context) *Translator {
	if ctx == nil {
		panic("i18n: nil context")
	}
	t2 := *t
	t2.ctx = ctx
	return &t2
}

// T translates a scalar path and substitutes {{name}} placeholders.
func (t *Translator) T(path string, placeholders ...M) string {
	v, err := t.store.LookupContext(t.ctx, t.locale, path)
	if err != nil {
		return path
	}
	switch v.(type) {
	case string, int64, float64, bool:
		return ReplacePlaceholders(formatScalar(v), mergeArgs(placeholders...))
	default:
		return path
	}
}

// TranslateMessage translates a key with a single placeholder map.
// Its signature matches the common TranslateFunc shape used by validators.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.T(key, values)
}

// Tn translates a plural path for quantity n.
func (t *Translator) Tn(path string, n any, placeholders ...M) string {
	v, err := t.store.LookupContext(t.ctx, t.locale, path)
	if err != nil {
		return path
	}
	p, ok := v.(*Plural)
	if !ok {
		return path
	}
	out, err := p.Call(n, placeholders...)
	if err != nil {
		return path
	}
	if s, ok := out.(string); ok {
		return s
	}
	return path
}

// Value returns the raw lookup result for path.
func (t *Translator) Value(path string) (any, error) {
	return t.store.LookupContext(t.ctx, t.locale, path)
}

// Language returns the translator's locale.
func (t *Translator) Language() string {
	return t.locale
}

// Store returns the underlying Store.
func (t *Translator) Store() *Store {
	return t.store
}
