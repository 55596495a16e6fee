package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/t3lang/t3lang-shell/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose(os.Args[1:])}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fail(err)
	}

	if err := cli.Execute(ctx, root, os.Args[1:]); err != nil {
		fail(err)
	}
}

func fail(err error) {
	color.New(color.FgRed).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// isVerbose is decided before cobra parses flags because the logger is built with the container.
func isVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	debug := os.Getenv("T3LANG_DEBUG")
	return strings.EqualFold(debug, "1") || strings.EqualFold(debug, "true")
}
