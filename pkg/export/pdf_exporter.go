package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth     = 190.0
	coreFont      = "Arial"
	unicodeFont   = "unicode"
	headerHeight  = 8.0
	rowHeight     = 7.0
	footerSpacing = 4.0
)

// PDFExporter renders datasets into a tabular A4 PDF.
type PDFExporter struct {
	// FontPath points at a UTF-8 TrueType font. Core fonts only cover Latin-1, so
	// Chinese meanings need one.
	FontPath string
	// Weights sizes columns relative to each other, keyed by header. Missing
	// headers weigh 1.
	Weights map[string]float64
	now     func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter(fontPath string, weights map[string]float64) *PDFExporter {
	return &PDFExporter{FontPath: fontPath, Weights: weights, now: time.Now}
}

// ContentType returns the MIME type of rendered output.
func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Extension returns the file extension of rendered output.
func (e *PDFExporter) Extension() string {
	return "pdf"
}

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)

	family := coreFont
	if e.FontPath != "" {
		pdf.AddUTF8Font(unicodeFont, "", e.FontPath)
		pdf.AddUTF8Font(unicodeFont, "B", e.FontPath)
		family = unicodeFont
	}
	pdf.AddPage()

	if title != "" {
		pdf.SetFont(family, "B", 14)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	widths := e.columnWidths(data.Headers)

	pdf.SetFont(family, "B", 10)
	for i, header := range data.Headers {
		pdf.CellFormat(widths[i], headerHeight, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	for _, row := range data.Rows {
		for i, header := range data.Headers {
			pdf.CellFormat(widths[i], rowHeight, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	pdf.Ln(footerSpacing)
	pdf.SetFont(family, "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("%d rows, generated %s", len(data.Rows), now().UTC().Format(time.RFC3339)), "", 1, "R", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) columnWidths(headers []string) []float64 {
	weights := make([]float64, len(headers))
	var total float64
	for i, header := range headers {
		w := 1.0
		if custom, ok := e.Weights[header]; ok && custom > 0 {
			w = custom
		}
		weights[i] = w
		total += w
	}
	for i := range weights {
		weights[i] = pageWidth * weights[i] / total
	}
	return weights
}
