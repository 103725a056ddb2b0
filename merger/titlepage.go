package merger

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	titleFontSize    = 24.0
	titleMinFontSize = 12.0
	titleWidthLimit  = 0.8 // fraction of the page width the text may occupy
)

// fitFontSize shrinks the starting font size one point at a time until the
// measured text fits the width limit, stopping at the minimum size even if
// the text still overflows.
func fitFontSize(text string, pageWidth float64, measure func(string, float64) float64) float64 {
	size := titleFontSize
	maxWidth := pageWidth * titleWidthLimit
	for measure(text, size) > maxWidth && size > titleMinFontSize {
		size--
	}
	return size
}

// createTitlePage renders a single page carrying only the given filename,
// auto-sized and centered, to a temporary PDF and returns its path.
func (m *Merger) createTitlePage(filename string) (string, error) {
	path := m.tempPath("title")

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	measure := func(s string, size float64) float64 {
		pdf.SetFont(tocFont, "", size)
		return pdf.GetStringWidth(s)
	}

	st := drawState{font: tocFont, size: fitFontSize(filename, pageW, measure)}
	pdf.SetFont(st.font, "", st.size)

	textWidth := pdf.GetStringWidth(filename)
	st.y = (pageH - st.size) / 2 // baseline just above the page middle

	pdf.SetTextColor(0, 0, 0)
	pdf.Text((pageW-textWidth)/2, st.y, filename)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing title page for %s: %w", filename, err)
	}
	return path, nil
}
