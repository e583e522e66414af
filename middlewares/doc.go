// Package middlewares provides net/http middleware for the translation server.
//
// # Request ID
//
// RequestID assigns an ID to each request, reusing X-Request-ID or
// X-Correlation-ID from upstream when present. Pair it with
// RequestIDExtractor to stamp every log entry:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover converts panics into 500 responses and logs the value with a
// bounded stack trace.
//
// # I18n
//
// I18n resolves the request language (query "lang", cookie "lang", then
// Accept-Language by default) against the loaded locales and stores a bound
// Translator in the request context:
//
//	r.Use(middlewares.I18n(store))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    tr := middlewares.GetTranslator(r.Context())
//	    fmt.Fprint(w, tr.T("greeting"))
//	})
package middlewares
