// Command blockfall-sim plays many bot-driven sessions headlessly and prints
// a Markdown report.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
