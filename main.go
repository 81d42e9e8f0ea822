package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cavegen/utils"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	name := filepath.Base(os.Args[0])

	config, err := parseConfig(name, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(exitSuccess)
	}
	if err != nil {
		if errors.Is(err, utils.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Usage: %s [flags] [%s]\n", name, utils.Usage)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}

	if err = run(config, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
