package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// RenderResult prints the recommendations and the condition list.
func RenderResult(out io.Writer, result domain.ParsedResult) {
	fmt.Fprintln(out, "Рекомендации:")
	fmt.Fprintln(out, result.RecommendationsOrPlaceholder())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Состояния:")
	if !result.HasStates() {
		fmt.Fprintln(out, domain.MsgNoStates)
		return
	}
	for _, s := range result.States {
		fmt.Fprintf(out, "• %s — %s\n", s.Name, s.Percent)
	}
}

// RenderWarning prints a one-line form warning.
func RenderWarning(out io.Writer, msg string) {
	fmt.Fprintf(out, "⚠️  %s\n", msg)
}
