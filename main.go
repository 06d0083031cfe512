package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	version := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		version = info.Main.Version
	}

	rootCmd := cli.NewRootCommand(afero.NewOsFs(), version)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}
	return nil
}
