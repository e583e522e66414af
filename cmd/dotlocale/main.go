// Command dotlocale queries and serves localized content trees.
//
//	dotlocale get [-count N] [-arg name=value]... <locale> <path>
//	dotlocale locales
//	dotlocale serve
//
// Configuration comes from the environment (and an optional .env file):
// LOCALES_DIR, LOCALES_FORMAT, DEFAULT_LOCALE, STRICT, HTTP_ADDR,
// SHUTDOWN_TIMEOUT, LOG_LEVEL, LOG_FORMAT, SENTRY_DSN and the LOCALES_S3_*
// settings for bucket-backed translations.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), RootCommand())
}
