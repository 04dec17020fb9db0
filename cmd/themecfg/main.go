// Package main is the entry point for themecfg.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/lensfolio/themecfg/internal/cmd"
	oerrors "github.com/lensfolio/themecfg/internal/errors"
)

func main() {
	// THEMECFG_* variables may come from a .env file in the working
	// directory; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
