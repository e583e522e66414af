package i18n

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

var (
	ErrEmptyLanguage     = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace    = errors.New("i18n: namespace cannot be empty")
	ErrNilPluralRule     = errors.New("i18n: plural rule cannot be nil")
	ErrNilPluralProvider = errors.New("i18n: plural provider cannot be nil")
	ErrNilSink           = errors.New("i18n: diagnostic sink cannot be nil")
	ErrNilSource         = errors.New("i18n: source cannot be nil")
	ErrInvalidFile       = errors.New("i18n: invalid translation file")
	ErrInvalidValue      = errors.New("i18n: invalid translation value")
	ErrConflict          = errors.New("i18n: conflicting translation value")
	ErrInvalidPath       = errors.New("i18n: invalid path")
	ErrInvalidQuantity   = errors.New("i18n: invalid plural quantity")

	ErrDefaultLocaleNotLoaded  = errors.New("i18n: default locale is not loaded")
	ErrLocaleNotLoaded         = errors.New("i18n: locale is not loaded")
	ErrMissingKey              = errors.New("i18n: key not found")
	ErrIndexOutOfRange         = errors.New("i18n: index out of range")
	ErrWrongAccessKind         = errors.New("i18n: wrong access kind")
	ErrNotCallable             = errors.New("i18n: value is not callable")
	ErrMissingPluralForm       = errors.New("i18n: missing plural form")
	ErrUnsupportedPluralLocale = errors.New("i18n: no plural rules for locale")
)

// MissingKeyError is returned in strict mode when a field segment is absent
// from both the requested locale and the default locale.
type MissingKeyError struct {
	Locale string
	Path   string
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("i18n: locale %q: key %q not found (path %q)", e.Locale, e.Key, e.Path)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// IndexOutOfRangeError is returned in strict mode when an index segment is
// outside the sequence in both the requested locale and the default locale.
type IndexOutOfRangeError struct {
	Locale string
	Path   string
	Index  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("i18n: locale %q: index %d out of range (path %q)", e.Locale, e.Index, e.Path)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// WrongAccessKindError is returned when a field is requested from a sequence,
// an index from a mapping, or anything from a scalar.
type WrongAccessKindError struct {
	Locale string
	Path   string
	Access string
	Kind   Kind
}

func (e *WrongAccessKindError) Error() string {
	return fmt.Sprintf("i18n: locale %q: %s access on %s (path %q)", e.Locale, e.Access, e.Kind, e.Path)
}

func (e *WrongAccessKindError) Unwrap() error { return ErrWrongAccessKind }

// NotCallableError is returned when a quantity is applied to a namespace or a list.
type NotCallableError struct {
	Locale string
	Path   string
	Kind   Kind
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("i18n: locale %q: %s at %q is not callable", e.Locale, e.Kind, e.Path)
}

func (e *NotCallableError) Unwrap() error { return ErrNotCallable }

// MissingPluralFormError is returned in strict mode when a plural mapping has
// neither the selected category nor "other".
type MissingPluralFormError struct {
	Locale   string
	Path     string
	Category plural.Category
}

func (e *MissingPluralFormError) Error() string {
	return fmt.Sprintf("i18n: locale %q: plural %q has no %q or %q form", e.Locale, e.Path, e.Category, plural.Other)
}

func (e *MissingPluralFormError) Unwrap() error { return ErrMissingPluralForm }

// UnsupportedPluralLocaleError is returned in strict mode when the plural
// provider has no rules for the locale. It matches both
// ErrUnsupportedPluralLocale and the provider's own error.
type UnsupportedPluralLocaleError struct {
	Err    error
	Locale string
}

func (e *UnsupportedPluralLocaleError) Error() string {
	return fmt.Sprintf("i18n: locale %q: no plural rules: %v", e.Locale, e.Err)
}

func (e *UnsupportedPluralLocaleError) Unwrap() []error {
	return []error{ErrUnsupportedPluralLocale, e.Err}
}

// LocaleNotLoadedError is returned in strict mode for a locale with no tree.
type LocaleNotLoadedError struct {
	Locale string
}

func (e *LocaleNotLoadedError) Error() string {
	return fmt.Sprintf("i18n: locale %q is not loaded", e.Locale)
}

func (e *LocaleNotLoadedError) Unwrap() error { return ErrLocaleNotLoaded }
