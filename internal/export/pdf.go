package export

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders an advice document as a paginated PDF: a centered title
// block, then one paragraph per input line. Lines beginning with '#' use
// the heading style, everything else the body style, with a small spacer
// after each line. On failure it returns the error and no bytes; the
// caller withholds the download.
func PDF(content, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate what we can and drop the rest
	// rather than emitting mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(title), "", "C", false)
	pdf.Ln(4)

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			pdf.SetFont("Helvetica", "B", 13)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
