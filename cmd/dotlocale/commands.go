package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/dmitrymomot/dotlocale/internal/config"
	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/logger"
)

const description = `dotlocale resolves dotted paths such as "pages[0].title" against
per-locale translation trees, falling back to the default locale.

Examples:
  dotlocale get ru messages.greeting -arg name=Ann
  dotlocale get -count 5 ru items.apple
  dotlocale locales
  LOCALES_DIR=./locales dotlocale serve`

// RootCommand returns the dotlocale command tree.
func RootCommand() *cli.Command {
	return cli.NewCommand("dotlocale").
		WithSynopsis("dotlocale <command> [opts]").
		WithDescription(description).
		WithSubs(
			GetCommand(),
			LocalesCommand(),
			ServeCommand(),
		)
}

// loadStore reads configuration and loads the store with logs on stderr,
// keeping stdout for command output.
func loadStore(ctx context.Context) (*i18n.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.NewWithWriter(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}
	store, _, err := config.NewStore(ctx, cfg, logger.Component(log, "cli"))
	return store, err
}

// argsOpt collects repeated -arg name=value pairs into args.
func argsOpt(args i18n.M) *cli.Opt {
	return &cli.Opt{
		Name:        "arg",
		Aliases:     []string{"a"},
		Description: "placeholder value, repeatable",
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
			name, value, ok := strings.Cut(v, "=")
			if !ok || strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%w: -arg wants name=value, got %q", cli.ErrUsage, v)
			}
			args[strings.TrimSpace(name)] = value
			return value, nil
		}), "(name=value)"),
	}
}

func logAttrs(store *i18n.Store) []any {
	return []any{
		slog.Any("locales", store.Languages()),
		slog.String("default", store.DefaultLanguage()),
	}
}
