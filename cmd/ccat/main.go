package main

import (
	"fmt"
	"os"

	"github.com/adversing/ccat/internal/app"
	"github.com/adversing/ccat/internal/catalog"
	"github.com/adversing/ccat/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	highlighter := app.New(catalog.New(), log)

	if err := newRootCmd(highlighter, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
