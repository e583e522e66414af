package server

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
)

// statusFor maps lookup errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, i18n.ErrMissingKey):
		return http.StatusNotFound, "missing_key"
	case errors.Is(err, i18n.ErrIndexOutOfRange):
		return http.StatusNotFound, "index_out_of_range"
	case errors.Is(err, i18n.ErrLocaleNotLoaded):
		return http.StatusNotFound, "locale_not_loaded"
	case errors.Is(err, i18n.ErrWrongAccessKind):
		return http.StatusBadRequest, "wrong_access_kind"
	case errors.Is(err, i18n.ErrNotCallable):
		return http.StatusBadRequest, "not_callable"
	case errors.Is(err, i18n.ErrInvalidPath):
		return http.StatusBadRequest, "invalid_path"
	case errors.Is(err, i18n.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_quantity"
	case errors.Is(err, i18n.ErrMissingPluralForm):
		return http.StatusUnprocessableEntity, "missing_plural_form"
	case errors.Is(err, i18n.ErrUnsupportedPluralLocale):
		return http.StatusUnprocessableEntity, "unsupported_plural_locale"
	}
	return http.StatusInternalServerError, "internal"
}
