package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cosmo-health/internal/app"
	"github.com/doeshing/cosmo-health/internal/domain"
)

// NewDoctorCommand checks that the form can start.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check config, reference document and API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}

			report, runErr := container.DoctorService.Run(cmd.Context())
			// the report is printed even when a check aborted the run
			if asJSON {
				if err := writeDoctorJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				writeDoctorReport(cmd.OutOrStdout(), report)
			}

			switch {
			case runErr != nil:
				return fmt.Errorf("diagnostics aborted: %w", runErr)
			case report.Failed():
				return errors.New("diagnostics found problems")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func writeDoctorReport(out io.Writer, report domain.HealthReport) {
	counts := map[domain.HealthStatus]int{}
	for _, check := range report.Checks {
		counts[check.Status]++
		fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
	fmt.Fprintf(out, "%d ok, %d warn, %d error\n",
		counts[domain.HealthOK], counts[domain.HealthWarn], counts[domain.HealthError])
}

type doctorCheckJSON struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

func writeDoctorJSON(out io.Writer, report domain.HealthReport) error {
	checks := make([]doctorCheckJSON, 0, len(report.Checks))
	for _, c := range report.Checks {
		checks = append(checks, doctorCheckJSON{Name: c.Name, Status: string(c.Status), Details: c.Details})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"ok":     !report.Failed(),
		"checks": checks,
	})
}
