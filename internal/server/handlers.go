package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dotlocale/middlewares"
	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

type localesResponse struct {
	Default string   `json:"default"`
	Locales []string `json:"locales"`
	Strict  bool     `json:"strict"`
}

// lookupResponse describes one resolved value. Value holds the scalar for
// scalars, sorted keys for namespaces, the length for lists, the forms for
// an uncalled plural and nothing for null.
type lookupResponse struct {
	Locale string `json:"locale"`
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Value  any    `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, localesResponse{
		Default: s.store.DefaultLanguage(),
		Locales: s.store.Languages(),
		Strict:  s.store.Strict(),
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	tr := middlewares.GetTranslator(r.Context())
	locale := tr.Language()
	path := chi.URLParam(r, "*")

	query := r.URL.Query()
	args := make(i18n.M, len(query))
	for name, values := range query {
		if name != "count" && len(values) > 0 {
			args[name] = values[0]
		}
	}

	v, err := tr.Value(path)
	called := err == nil && query.Has("count")
	if called {
		v, err = call(v, locale, path, query.Get("count"), args)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := lookupResponse{Locale: locale, Path: path}
	switch val := v.(type) {
	case *i18n.Namespace:
		resp.Kind, resp.Value = "namespace", val.Keys()
	case *i18n.List:
		resp.Kind, resp.Value = "list", val.Len()
	case *i18n.Plural:
		resp.Kind, resp.Value = "plural", val.Forms()
	case i18n.Null:
		resp.Kind = "null"
	case string:
		if !called {
			val = i18n.ReplacePlaceholders(val, args)
		}
		resp.Kind, resp.Value = "scalar", val
	default:
		resp.Kind, resp.Value = "scalar", val
	}
	writeJSON(w, http.StatusOK, resp)
}

// call applies a textual quantity to v. Only plurals are callable.
func call(v any, locale, path, count string, args i18n.M) (any, error) {
	caller, ok := v.(i18n.Caller)
	if !ok {
		kind := i18n.KindScalar
		if i18n.IsNull(v) {
			kind = i18n.KindNull
		}
		return nil, &i18n.NotCallableError{Locale: locale, Path: path, Kind: kind}
	}
	ops, err := plural.ParseOperands(count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", i18n.ErrInvalidQuantity, err)
	}
	return caller.Call(ops, args)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
	} else {
		s.logger.DebugContext(r.Context(), "lookup rejected",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
