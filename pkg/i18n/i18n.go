package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/dotlocale/pkg/logger"
	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

// DefaultLang is the default locale used when no default locale is specified.
const DefaultLang = "en"

// Store holds one translation tree per locale and resolves paths against them.
// It is immutable after creation, making it safe for concurrent use.
type Store struct {
	roots       map[string]*Node
	plurals     plural.Provider
	pluralRules map[string]plural.Rule
	sink        Sink

	defaultLang string
	strict      bool

	// Pre-computed list of loaded locales, default first.
	languages []string
}

// Option configures the Store during construction.
type Option func(*Store) error

// New creates a Store with the given options. Options are applied in order.
// The default locale must have a tree once all options ran.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		roots:       make(map[string]*Node),
		plurals:     plural.CLDR(),
		pluralRules: make(map[string]plural.Rule),
		sink:        NewLogSink(logger.NewNope()),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if s.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}
	if _, ok := s.roots[s.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLocaleNotLoaded, s.defaultLang)
	}

	if len(s.pluralRules) > 0 {
		rules, err := plural.NewRules(s.plurals, s.pluralRules)
		if err != nil {
			return nil, err
		}
		s.plurals = rules
	}

	s.languages = s.buildLanguagesList()

	return s, nil
}

// WithDefaultLanguage sets the default/fallback locale.
func WithDefaultLanguage(lang string) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		s.defaultLang = lang
		return nil
	}
}

// WithStrict switches the Store to strict mode: missing keys, out-of-range
// indexes, missing plural forms and unknown locales become errors instead of
// diagnostics plus a Null marker.
func WithStrict(strict bool) Option {
	return func(s *Store) error {
		s.strict = strict
		return nil
	}
}

// WithTree loads the whole tree of a locale. Mappings merge with trees loaded
// earlier; any other overlap is ErrConflict.
func WithTree(lang string, tree map[string]any) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		node, err := FromValue(tree)
		if err != nil {
			return fmt.Errorf("locale %q: %w", lang, err)
		}
		return s.merge(lang, node)
	}
}

// WithTranslations loads a tree for a locale under the top-level key namespace.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		node, err := FromValue(translations)
		if err != nil {
			return fmt.Errorf("locale %q: %s: %w", lang, namespace, err)
		}
		return s.merge(lang, NewMapping(map[string]*Node{namespace: node}))
	}
}

// WithNode loads a prebuilt tree for a locale. The root must be a mapping.
func WithNode(lang string, root *Node) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if root == nil || root.Kind() != KindMapping {
			return fmt.Errorf("%w: locale %q: root must be a mapping", ErrInvalidValue, lang)
		}
		return s.merge(lang, root)
	}
}

// WithPluralProvider replaces the CLDR plural provider.
func WithPluralProvider(p plural.Provider) Option {
	return func(s *Store) error {
		if p == nil {
			return ErrNilPluralProvider
		}
		s.plurals = p
		return nil
	}
}

// WithPluralRule registers a custom plural rule for a locale. It takes
// precedence over the plural provider for that locale.
func WithPluralRule(lang string, rule plural.Rule) Option {
	return func(s *Store) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		s.pluralRules[lang] = rule
		return nil
	}
}

// WithSink sets the receiver of non-strict diagnostics.
func WithSink(sink Sink) Option {
	return func(s *Store) error {
		if sink == nil {
			return ErrNilSink
		}
		s.sink = sink
		return nil
	}
}

// WithLogger reports non-strict diagnostics as WARN records on log.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) error {
		if log == nil {
			return ErrNilSink
		}
		s.sink = NewLogSink(log)
		return nil
	}
}

// Get returns the root namespace of a locale.
//
// A locale without a tree is LocaleNotLoadedError in strict mode. Otherwise
// a diagnostic is reported and the returned namespace is empty, so every
// lookup falls back to the default locale.
func (s *Store) Get(lang string) (*Namespace, error) {
	return s.GetContext(context.Background(), lang)
}

// GetContext is Get with a context that is handed to the diagnostic sink for
// this lookup and every lookup made through the returned views.
func (s *Store) GetContext(ctx context.Context, lang string) (*Namespace, error) {
	root, ok := s.roots[lang]
	if !ok {
		if s.strict {
			return nil, &LocaleNotLoadedError{Locale: lang}
		}
		s.report(ctx, lang, nil, ReasonLocaleNotLoaded,
			fmt.Sprintf("Locale %q is not loaded; falling back to %q", lang, s.defaultLang))
		root = emptyMapping
	}
	return &Namespace{view: view{ctx: ctx, store: s, locale: lang, node: root}}, nil
}

// Lookup resolves a textual path such as "pages[0].title" for a locale.
func (s *Store) Lookup(lang, path string) (any, error) {
	return s.LookupContext(context.Background(), lang, path)
}

// LookupContext is Lookup with a context for the diagnostic sink.
func (s *Store) LookupContext(ctx context.Context, lang, path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	root, err := s.GetContext(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return root, nil
	}
	return s.value(ctx, lang, p)
}

// Languages returns the loaded locales, default first, the rest sorted.
func (s *Store) Languages() []string {
	return slices.Clone(s.languages)
}

// DefaultLanguage returns the default/fallback locale.
func (s *Store) DefaultLanguage() string {
	return s.defaultLang
}

// HasLanguage reports whether a tree is loaded for lang.
func (s *Store) HasLanguage(lang string) bool {
	_, ok := s.roots[lang]
	return ok
}

// Strict reports whether the Store raises errors instead of reporting diagnostics.
func (s *Store) Strict() bool {
	return s.strict
}

func (s *Store) buildLanguagesList() []string {
	langs := make([]string, 0, len(s.roots))
	langs = append(langs, s.defaultLang)
	others := slices.Sorted(maps.Keys(s.roots))
	for _, lang := range others {
		if lang != s.defaultLang {
			langs = append(langs, lang)
		}
	}
	return langs
}

func (s *Store) report(ctx context.Context, lang string, p Path, reason Reason, msg string) {
	d := Diagnostic{
		Locale:  lang,
		Path:    p.String(),
		Reason:  reason,
		Message: msg,
	}
	if cs, ok := s.sink.(ContextSink); ok {
		cs.ReportContext(ctx, d)
		return
	}
	s.sink.Report(d)
}

// merge folds a mapping tree into the locale root.
func (s *Store) merge(lang string, tree *Node) error {
	existing, ok := s.roots[lang]
	if !ok {
		s.roots[lang] = tree
		return nil
	}
	merged, err := mergeNodes(existing, tree, nil)
	if err != nil {
		return fmt.Errorf("locale %q: %w", lang, err)
	}
	s.roots[lang] = merged
	return nil
}

var emptyMapping = NewMapping(nil)

func mergeNodes(dst, src *Node, at Path) (*Node, error) {
	if dst.Kind() != KindMapping || src.Kind() != KindMapping {
		return nil, fmt.Errorf("%w at %q", ErrConflict, at.String())
	}
	fields := maps.Clone(dst.fields)
	for k, v := range src.fields {
		cur, ok := fields[k]
		if !ok {
			fields[k] = v
			continue
		}
		merged, err := mergeNodes(cur, v, at.Append(Field(k)))
		if err != nil {
			return nil, err
		}
		fields[k] = merged
	}
	return &Node{kind: KindMapping, fields: fields}, nil
}
