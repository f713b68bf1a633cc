// Command leakcalc estimates gas leakage through a small orifice.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sergeyya18/leakcalc/internal/cli"
	"github.com/sergeyya18/leakcalc/pkg/version"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the CLI with args. Cobra has already printed the error when
// one is returned.
func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("leakcalc: %w", err)
	}
	return nil
}
