// Package i18n resolves localized content stored as one tree per locale.
//
// A tree is built from nested mappings, sequences and scalars, usually loaded
// from YAML, JSON, TOML or go-i18n message files. Lookups walk a path such as
// "messages.status.online" or "pages[0].title" in the requested locale. When a
// key or index is missing there, the whole path is replayed against the
// default locale. Values from the two trees are never mixed.
//
// # Basic Usage
//
//	store, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTree("en", map[string]any{
//			"greeting": "Hello",
//			"items":    map[string]any{"one": "{{count}} item", "other": "{{count}} items"},
//		}),
//		i18n.WithTree("ru", map[string]any{
//			"items": map[string]any{"one": "{{count}} предмет", "few": "{{count}} предмета", "many": "{{count}} предметов"},
//		}),
//	)
//
//	ru, _ := store.Get("ru")
//	v, _ := ru.Get("greeting") // "Hello", from the default locale
//
//	items, _ := ru.Get("items")
//	s, _ := items.(*i18n.Plural).Call(21) // "21 предмет"
//
// # Values
//
// Scalars are returned as string, int64, float64 or bool. Mappings are
// returned as *Namespace, sequences as *List, and mappings whose keys are all
// CLDR plural categories as *Plural. Views are cheap and re-resolve children
// from the locale root, so fallback applies at every depth.
//
// # Strict Mode
//
// By default a missing key or index reports a Diagnostic to the configured
// Sink and returns a Null marker. WithStrict(true) turns these into
// *MissingKeyError and *IndexOutOfRangeError. Explicit nulls never fail.
// Wrong access (an index on a mapping, a field on a list, a quantity on a
// namespace) always fails.
//
// # File-Based Translations
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sub, _ := fs.Sub(localesFS, "locales")
//	store, err := i18n.New(i18n.WithDir(sub))
//
// File convention: {locale}.yaml for a whole tree, {locale}/{namespace}.yaml
// for a tree under a top-level key.
//
// # Thread Safety
//
// A Store is immutable after New returns and is safe for concurrent use.
package i18n
