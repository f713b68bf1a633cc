package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the leakcalc version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("leakcalc %s (%s, %s/%s)\n", ver, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if verbose {
				cmd.Printf("commit: %s\n", version.GetGitCommit())
				cmd.Printf("built:  %s\n", version.GetBuildDate())
			}
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show commit and build date")

	return cmd
}
