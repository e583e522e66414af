package i18n

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

// View is the common surface of Namespace, List and Plural. Operations that
// do not fit the variant fail with WrongAccessKindError or NotCallableError.
type View interface {
	Get(name string) (any, error)
	At(i int) (any, error)
	Call(quantity any, args ...M) (any, error)
	Locale() string
	Path() Path
	Kind() Kind
	String() string
}

// Fielder is implemented by views that accept field access.
type Fielder interface {
	Get(name string) (any, error)
}

// Indexer is implemented by views that accept index access.
type Indexer interface {
	At(i int) (any, error)
	Len() int
}

// Caller is implemented by views that accept a plural quantity.
type Caller interface {
	Call(quantity any, args ...M) (any, error)
}

var (
	_ View    = (*Namespace)(nil)
	_ View    = (*List)(nil)
	_ View    = (*Plural)(nil)
	_ Fielder = (*Namespace)(nil)
	_ Indexer = (*List)(nil)
	_ Caller  = (*Plural)(nil)
)

// view is bound to the requested locale and the full path from its root.
// It holds no mutable state.
type view struct {
	ctx    context.Context
	store  *Store
	node   *Node
	locale string
	path   Path
}

// Locale returns the locale the view was requested for.
func (v view) Locale() string { return v.locale }

// Path returns a copy of the path from the locale root.
func (v view) Path() Path { return Path(nil).Append(v.path...) }

// Kind returns the kind of the wrapped node.
func (v view) Kind() Kind { return v.node.kind }

func (v view) wrongAccess(access string, seg Segment) error {
	return &WrongAccessKindError{
		Locale: v.locale,
		Path:   v.path.Append(seg).String(),
		Access: access,
		Kind:   v.node.kind,
	}
}

func (v view) notCallable() error {
	return &NotCallableError{Locale: v.locale, Path: v.path.String(), Kind: v.node.kind}
}

// Namespace wraps a mapping node.
type Namespace struct {
	view
}

// Get resolves the child field name. The lookup starts again from the locale
// root, so fallback applies at every depth.
func (n *Namespace) Get(name string) (any, error) {
	return n.store.value(n.ctx, n.locale, n.path.Append(Field(name)))
}

// Lookup resolves a textual path relative to the namespace.
func (n *Namespace) Lookup(path string) (any, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return n, nil
	}
	return n.store.value(n.ctx, n.locale, n.path.Append(p...))
}

// At always fails: mappings are not indexable.
func (n *Namespace) At(i int) (any, error) {
	return nil, n.wrongAccess("index", Index(i))
}

// Call always fails: namespaces are not callable.
func (n *Namespace) Call(any, ...M) (any, error) {
	return nil, n.notCallable()
}

// Keys returns the sorted keys of the wrapped mapping.
func (n *Namespace) Keys() []string {
	return n.node.Keys()
}

func (n *Namespace) String() string {
	return fmt.Sprintf("Namespace(%s: %s)", n.locale, n.path.String())
}

// List wraps a sequence node.
type List struct {
	view
}

// At resolves element i. Negative indexes are out of range.
func (l *List) At(i int) (any, error) {
	return l.store.value(l.ctx, l.locale, l.path.Append(Index(i)))
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.node.Len()
}

// Get always fails: sequences have no fields.
func (l *List) Get(name string) (any, error) {
	return nil, l.wrongAccess("field", Field(name))
}

// Call always fails: lists are not callable.
func (l *List) Call(any, ...M) (any, error) {
	return nil, l.notCallable()
}

func (l *List) String() string {
	return fmt.Sprintf("List(%s: %s, len=%d)", l.locale, l.path.String(), l.Len())
}

// Plural wraps a mapping whose keys are all plural category labels.
type Plural struct {
	view
}

// Call selects the plural form for quantity using the rules of the view's
// locale, falls back to "other", and substitutes {{count}} and the named
// arguments. The result is a string, or a Null marker in non-strict mode
// when no form applies.
func (p *Plural) Call(quantity any, args ...M) (any, error) {
	ops, err := plural.NewOperands(quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}

	category, err := p.store.plurals.Category(p.locale, ops)
	if err != nil {
		if !errors.Is(err, plural.ErrUnsupportedLocale) {
			return nil, err
		}
		if p.store.strict {
			return nil, &UnsupportedPluralLocaleError{Locale: p.locale, Err: err}
		}
		p.store.report(p.ctx, p.locale, p.path, ReasonUnsupportedPluralLocale,
			fmt.Sprintf("Locale %q: no plural rules; using %q for %q", p.locale, plural.Other, p.path.String()))
		category = plural.Other
	}

	form, ok := p.node.Field(string(category))
	if !ok {
		form, ok = p.node.Field(string(plural.Other))
	}
	if !ok {
		if p.store.strict {
			return nil, &MissingPluralFormError{Locale: p.locale, Path: p.path.String(), Category: category}
		}
		p.store.report(p.ctx, p.locale, p.path, ReasonMissingPluralForm,
			fmt.Sprintf("Locale %q: plural path %q has no %q or %q form; null will be returned",
				p.locale, p.path.String(), category, plural.Other))
		return newNull(p.locale, p.path), nil
	}

	if form.kind == KindNull {
		if !p.store.strict {
			p.store.report(p.ctx, p.locale, p.path, ReasonExplicitNull,
				fmt.Sprintf("Locale %q: key/index path %q has an explicit null value", p.locale, p.path.String()))
		}
		return newNull(p.locale, p.path), nil
	}

	params := make(M, len(args)+1)
	params["count"] = ops
	for _, a := range args {
		maps.Copy(params, a)
	}

	return ReplacePlaceholders(formatScalar(form.scalar), params), nil
}

// Forms returns the categories defined by the plural mapping, in CLDR order.
func (p *Plural) Forms() []plural.Category {
	out := make([]plural.Category, 0, p.node.Len())
	for _, c := range plural.Categories() {
		if _, ok := p.node.Field(string(c)); ok {
			out = append(out, c)
		}
	}
	return out
}

// Get always fails: plural forms are selected with Call.
func (p *Plural) Get(name string) (any, error) {
	return nil, p.wrongAccess("field", Field(name))
}

// At always fails: plural mappings are not indexable.
func (p *Plural) At(i int) (any, error) {
	return nil, p.wrongAccess("index", Index(i))
}

func (p *Plural) String() string {
	return fmt.Sprintf("Plural(%s: %s, forms=%v)", p.locale, p.path.String(), p.Forms())
}

// Null marks the absence of a value: an explicit null in the tree, or a
// missing key in non-strict mode. It supports no further access.
type Null struct {
	locale string
	path   string
}

func newNull(lang string, p Path) Null {
	return Null{locale: lang, path: p.String()}
}

// Locale returns the locale the null was produced for.
func (n Null) Locale() string { return n.locale }

// Path returns the rendered path that produced the null.
func (n Null) Path() string { return n.path }

func (n Null) String() string {
	return fmt.Sprintf("Null(%s: %s)", n.locale, n.path)
}

// IsNull reports whether v is a Null marker.
func IsNull(v any) bool {
	_, ok := v.(Null)
	return ok
}
