package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/cosmo-health/internal/domain"
)

// FormPrompter collects vital signs line by line on a terminal.
type FormPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewFormPrompter constructs a prompter referencing stdio.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &FormPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Fill asks for every field still empty in prefilled. Values are kept as
// typed apart from the line ending. EOF leaves the remaining fields empty.
func (p *FormPrompter) Fill(prefilled domain.VitalSigns) (domain.VitalSigns, error) {
	values := make(map[string]string, 6)
	for _, f := range prefilled.Fields() {
		if f.Value != "" {
			values[f.Key] = f.Value
			continue
		}
		line, err := p.ask(f.Label)
		if err != nil {
			return domain.VitalSigns{}, err
		}
		values[f.Key] = line
	}
	return domain.VitalSigns{
		Pulse:       values["pulse"],
		HRV:         values["hrv"],
		SpO2:        values["spo2"],
		Pressure:    values["pressure"],
		Temperature: values["temperature"],
		Description: values["description"],
	}, nil
}

func (p *FormPrompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
