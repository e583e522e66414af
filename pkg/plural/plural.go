package plural

import "errors"

// Category is a CLDR plural category label.
type Category string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  Category = "zero"
	One   Category = "one"
	Two   Category = "two"
	Few   Category = "few"
	Many  Category = "many"
	Other Category = "other"
)

var (
	ErrUnsupportedLocale = errors.New("plural: unsupported locale")
	ErrInvalidQuantity   = errors.New("plural: invalid quantity")
	ErrNilRule           = errors.New("plural: rule cannot be nil")
)

// Categories returns all plural categories in CLDR order.
func Categories() []Category {
	return []Category{Zero, One, Two, Few, Many, Other}
}

// IsCategory reports whether s is one of the six CLDR category labels.
func IsCategory(s string) bool {
	switch Category(s) {
	case Zero, One, Two, Few, Many, Other:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Provider maps a locale and a number to a plural category.
// Implementations return an error wrapping ErrUnsupportedLocale when
// they have no rules for the locale.
type Provider interface {
	Category(locale string, ops Operands) (Category, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(locale string, ops Operands) (Category, error)

// Category calls f(locale, ops).
func (f ProviderFunc) Category(locale string, ops Operands) (Category, error) {
	return f(locale, ops)
}
