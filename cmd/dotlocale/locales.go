package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

type localesConfig struct {
	Locales *cli.Command
}

// LocalesCommand returns the locales subcommand.
func LocalesCommand() *cli.Command {
	cfg := &localesConfig{}
	return cli.NewCommandAt(&cfg.Locales, "locales").
		WithAliases("ls").
		WithSynopsis("locales").
		WithDescription("list loaded locales, default first").
		WithRun(cfg.run)
}

func (cfg *localesConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Locales.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: locales takes no arguments", cli.ErrUsage)
	}

	store, err := loadStore(context.Background())
	if err != nil {
		return err
	}
	for _, l := range store.Languages() {
		mark := ""
		if l == store.DefaultLanguage() {
			mark = " (default)"
		}
		if _, err := fmt.Fprintf(cc.Out, "%s%s\n", l, mark); err != nil {
			return err
		}
	}
	return nil
}
