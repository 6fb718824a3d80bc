// Package reference extracts the protocol document that grounds every prompt.
package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/doeshing/cosmo-health/internal/domain"
	"github.com/doeshing/cosmo-health/internal/ports"
)

// PDFLoader reads every page of a PDF and joins the extracted text.
type PDFLoader struct{}

// NewPDFLoader builds a loader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Load implements ports.ReferenceLoader. Pages without extractable text are
// skipped; the rest are joined with a single newline.
func (l *PDFLoader) Load(ctx context.Context, path string) (text string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &domain.ReferenceLoadError{Path: path, Err: fmt.Errorf("malformed pdf: %v", r)}
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", &domain.ReferenceLoadError{Path: path, Err: err}
	}
	defer file.Close()

	text, err = joinPages(ctx, pdfPages{reader: reader})
	if err != nil {
		return "", &domain.ReferenceLoadError{Path: path, Err: err}
	}
	return text, nil
}

type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type pdfPages struct {
	reader *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.reader.NumPage()
}

func (p pdfPages) PageText(num int) (string, error) {
	page := p.reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func joinPages(ctx context.Context, src pageSource) (string, error) {
	var pages []string
	for i := 1; i <= src.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		text = strings.TrimRight(text, " \t\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

var _ ports.ReferenceLoader = (*PDFLoader)(nil)
