package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/cosmo-health/internal/app"
	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

func newAnalyzeCommand(container *app.Container) *cobra.Command {
	var (
		vitals  domain.VitalSigns
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fill in the vital-signs form and request an analysis",
		Long:  "Fields not given as flags are asked for on stdin. All six must be non-empty.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := container.AnalysisService(ctx)
			if err != nil {
				return referenceFailure(err)
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			form := formSession{
				analyzer: svc,
				prompter: NewFormPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
				out:      cmd.OutOrStdout(),
				status:   cmd.ErrOrStderr(),
			}
			return form.Run(ctx, vitals)
		},
	}

	cmd.Flags().StringVar(&vitals.Pulse, "pulse", "", "Pulse")
	cmd.Flags().StringVar(&vitals.HRV, "hrv", "", "Heart rate variability")
	cmd.Flags().StringVar(&vitals.SpO2, "spo2", "", "Blood oxygen saturation")
	cmd.Flags().StringVar(&vitals.Pressure, "pressure", "", "Blood pressure")
	cmd.Flags().StringVar(&vitals.Temperature, "temperature", "", "Body temperature")
	cmd.Flags().StringVar(&vitals.Description, "description", "", "How the crew member feels, free text")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout (0 waits indefinitely)")

	return cmd
}

// referenceFailure renders reference load errors with the form's message.
func referenceFailure(err error) error {
	var loadErr *domain.ReferenceLoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf(domain.MsgReferenceFailed, loadErr)
	}
	return err
}

// formSession is one terminal form submission.
type formSession struct {
	analyzer ports.Analyzer
	prompter *FormPrompter
	out      io.Writer
	status   io.Writer
}

func (f formSession) Run(ctx context.Context, prefilled domain.VitalSigns) error {
	vitals, err := f.prompter.Fill(prefilled)
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	if err := vitals.Validate(); err != nil {
		RenderWarning(f.out, domain.MsgFillAllFields)
		return err
	}

	spinner := NewSpinner(f.status, domain.MsgRequesting)
	spinner.Start()
	result, err := f.analyzer.Analyze(ctx, vitals)
	spinner.Stop()
	if err != nil {
		return err
	}

	RenderResult(f.out, result)
	return nil
}
