package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

type getConfig struct {
	Get   *cli.Command
	Count string `cli:"name=count aliases=c desc='plural quantity, e.g. 3 or 1.5'"`
	Args  i18n.M
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{Args: i18n.M{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, argsOpt(cfg.Args))

	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-count N] [-arg name=value]... <locale> <path>").
		WithDescription("print the value at path for locale").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a locale and a path, got %v", cli.ErrUsage, args)
	}

	store, err := loadStore(context.Background())
	if err != nil {
		return err
	}
	v, err := lookup(store, args[0], args[1], cfg.Count, cfg.Args)
	if err != nil {
		return err
	}
	return printValue(cc.Out, v, cfg.Args)
}

// lookup resolves path and, when count is set, calls the resulting plural.
func lookup(store *i18n.Store, locale, path, count string, args i18n.M) (any, error) {
	v, err := store.Lookup(locale, path)
	if err != nil || count == "" {
		return v, err
	}
	caller, ok := v.(i18n.Caller)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a plural", cli.ErrUsage, path)
	}
	ops, err := plural.ParseOperands(count)
	if err != nil {
		return nil, fmt.Errorf("%w: -count: %w", cli.ErrUsage, err)
	}
	return caller.Call(ops, args)
}

func printValue(w io.Writer, v any, args i18n.M) error {
	var err error
	switch val := v.(type) {
	case *i18n.Namespace:
		for _, k := range val.Keys() {
			if _, err = fmt.Fprintln(w, k); err != nil {
				return err
			}
		}
	case *i18n.List:
		_, err = fmt.Fprintln(w, val.Len())
	case *i18n.Plural:
		_, err = fmt.Fprintln(w, val.Forms())
	case i18n.Null:
		_, err = fmt.Fprintln(w, val)
	case string:
		_, err = fmt.Fprintln(w, i18n.ReplacePlaceholders(val, args))
	default:
		_, err = fmt.Fprintln(w, val)
	}
	return err
}
