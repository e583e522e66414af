// Package logger builds slog loggers for dotlocale binaries.
//
// New returns a JSON logger on stdout. NewFromConfig picks the level and
// encoding from a Config, typically parsed from LOG_LEVEL and LOG_FORMAT.
// NewWithSentry additionally forwards WARN and ERROR records to Sentry, which
// is where translation diagnostics from a non-strict store end up in
// production. Without a DSN it falls back to stdout only, so the same code
// path works in development.
//
// Context extractors add request-scoped attributes on every call:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "lookup", slog.String("locale", "ru"))
//	// {"level":"INFO","msg":"lookup","locale":"ru","request_id":"..."}
//
// NewNope returns a logger that discards everything; it is the default
// diagnostic sink of i18n.Store.
package logger
