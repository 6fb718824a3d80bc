package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/version"
)

// NewVersionCommand prints build metadata.
func NewVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show Cosmo Health version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return nil
			}
			writeVersion(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print the version number only")
	return cmd
}

func writeVersion(out io.Writer) {
	fmt.Fprintf(out, "cosmo %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "  commit:  %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "  built:   %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  model:   %s (default)\n", domain.DefaultModelID)
}
