package merger

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants for the table of contents, in points on a Letter page.
const (
	tocFont          = "Helvetica"
	tocTitleText     = "Table of Contents"
	tocTitleFontSize = 24.0
	tocTextFontSize  = 12.0
	tocLineHeight    = 20.0
	tocMargin        = 72.0 // left, right, top and bottom
	dotSpacing       = 4.0
	pageNumberWidth  = 40.0 // column reserved for the page number
	wrapIndent       = 20.0 // indentation for continuation lines
)

// displayName formats a filename for the table of contents.
func displayName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// createTOC renders the table of contents pages to a temporary PDF and
// returns its path. Entries are drawn in order; long names wrap within the
// text column and entries paginate onto further pages as needed. An empty
// entry list still yields a one-page document carrying only the title.
func (m *Merger) createTOC(entries []ToCEntry) (string, error) {
	path := m.tempPath("toc")

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTextColor(0, 0, 0)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	maxTextWidth := pageW - 2*tocMargin - pageNumberWidth - 50

	st := drawTOCTitle(pdf, pageW, drawState{font: tocFont, size: tocTitleFontSize, y: tocMargin})

	pdf.SetFont(st.font, "", st.size)
	for _, entry := range entries {
		lines := wrapText(displayName(entry.Title), maxTextWidth, pdf.GetStringWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}

		// Paginate before an entry whose wrapped height would cross the
		// bottom margin.
		if st.y+float64(len(lines))*tocLineHeight > pageH-tocMargin {
			pdf.AddPage()
			st.y = tocMargin
		}

		// First line carries the dot leader and the page number.
		first := lines[0]
		textWidth := pdf.GetStringWidth(first)
		pdf.Text(tocMargin, st.y, first)

		dotsWidth := pageW - 2*tocMargin - textWidth - pageNumberWidth
		numDots := int(dotsWidth / dotSpacing)
		for i := 0; i < numDots; i++ {
			pdf.Text(tocMargin+textWidth+float64(i)*dotSpacing, st.y, ".")
		}

		pageNum := strconv.Itoa(entry.PageNum)
		pdf.Text(pageW-tocMargin-pdf.GetStringWidth(pageNum), st.y, pageNum)
		st.y += tocLineHeight

		// Continuation lines are indented and never repeat the dots or
		// the page number.
		for _, line := range lines[1:] {
			if st.y > pageH-tocMargin {
				pdf.AddPage()
				st.y = tocMargin
			}
			pdf.Text(tocMargin+wrapIndent, st.y, line)
			st.y += tocLineHeight
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing table of contents: %w", err)
	}
	return path, nil
}

// drawTOCTitle draws the centered bold title and returns the state for the
// first entry row below it.
func drawTOCTitle(pdf *gofpdf.Fpdf, pageW float64, st drawState) drawState {
	pdf.SetFont(st.font, "B", st.size)
	titleWidth := pdf.GetStringWidth(tocTitleText)
	pdf.Text((pageW-titleWidth)/2, st.y, tocTitleText)

	return drawState{
		font: st.font,
		size: tocTextFontSize,
		y:    st.y + st.size + 2*tocLineHeight,
	}
}
