package i18n

import (
	"context"
	"log/slog"
)

// Reason classifies a Diagnostic.
type Reason string

const (
	ReasonNotFoundKey             Reason = "not_found_key"
	ReasonNotFoundIndex           Reason = "not_found_index"
	ReasonExplicitNull            Reason = "explicit_null"
	ReasonMissingPluralForm       Reason = "missing_plural_form"
	ReasonUnsupportedPluralLocale Reason = "unsupported_plural_locale"
	ReasonLocaleNotLoaded         Reason = "locale_not_loaded"
)

// Diagnostic describes a lookup that degraded to a null marker (or to the
// "other" plural form) instead of failing.
type Diagnostic struct {
	Locale  string
	Path    string
	Reason  Reason
	Message string
}

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(d Diagnostic)
}

// ContextSink is implemented by sinks that want the context of the lookup
// that produced the diagnostic, such as a request context carrying log
// attributes. The Store prefers ReportContext when a sink provides it.
type ContextSink interface {
	Sink
	ReportContext(ctx context.Context, d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// LogSink writes diagnostics as WARN records. Records carry the lookup
// context, so context extractors on the handler annotate them.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a Sink that logs through log.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Report(d Diagnostic) {
	s.ReportContext(context.Background(), d)
}

func (s *LogSink) ReportContext(ctx context.Context, d Diagnostic) {
	s.log.LogAttrs(ctx, slog.LevelWarn, d.Message,
		slog.String("locale", d.Locale),
		slog.String("path", d.Path),
		slog.String("reason", string(d.Reason)),
	)
}
