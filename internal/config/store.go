package config

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/logger"
	"github.com/dmitrymomot/dotlocale/pkg/storage"
)

// NewStore loads translations from the configured directory or bucket.
// The returned Source is the one the store was loaded from, for readiness
// checks.
func NewStore(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Store, i18n.Source, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(cfg.Locales.DefaultLocale),
		i18n.WithStrict(cfg.Locales.Strict),
		i18n.WithLogger(logger.Component(log, "i18n")),
	}

	var src i18n.Source
	if cfg.UseS3() {
		s3src, err := storage.New(cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		src = s3src
		opts = append(opts, i18n.WithSource(ctx, src))
		log.InfoContext(ctx, "loading translations from object storage",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("prefix", cfg.S3.Prefix),
		)
	} else {
		fsys := os.DirFS(cfg.Locales.Dir)
		src = i18n.FSSource(fsys)
		opt, err := dirOption(cfg.Locales.Format, fsys)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, opt)
		log.InfoContext(ctx, "loading translations from directory",
			slog.String("dir", cfg.Locales.Dir),
			slog.String("format", cfg.Locales.Format),
		)
	}

	store, err := i18n.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("loading translations: %w", err)
	}

	log.InfoContext(ctx, "translations loaded",
		slog.Any("locales", store.Languages()),
		slog.String("default", store.DefaultLanguage()),
		slog.Bool("strict", store.Strict()),
	)
	return store, src, nil
}

func dirOption(format string, fsys fs.FS) (i18n.Option, error) {
	switch format {
	case FormatAuto, "":
		return i18n.WithDir(fsys), nil
	case FormatYAML:
		return i18n.WithYAMLDir(fsys), nil
	case FormatJSON:
		return i18n.WithJSONDir(fsys), nil
	case FormatTOML:
		return i18n.WithTOMLDir(fsys), nil
	case FormatGoI18n:
		return i18n.WithGoI18nDir(fsys), nil
	}
	return nil, fmt.Errorf("%w: LOCALES_FORMAT %q", ErrInvalidConfig, format)
}
