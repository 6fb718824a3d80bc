package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/cosmo-health/internal/app"
	"github.com/doeshing/cosmo-health/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose})
	if err != nil {
		return nil, err
	}

	analyzeCmd := newAnalyzeCommand(container)

	root := &cobra.Command{
		Use:   "cosmo",
		Short: "Cosmo Health - vital signs assistant for space flight",
		Long:  "Cosmo Health sends six vital-sign readings plus the protocol document to a chat model and shows recommendations with the three most likely conditions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeCmd.RunE(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(analyzeCmd)
	root.AddCommand(newServeCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
