package merger

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// newConfiguration returns the pdfcpu configuration shared by every write.
// Classic cross-reference tables keep the output readable by simpler PDF
// readers.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteXRefStream = false
	conf.WriteObjectStream = false
	return conf
}

// pageNumberStampDesc positions the footer text bottom-center, a little
// above the page edge, in black Helvetica 12.
const pageNumberStampDesc = "font:Helvetica, points:12, scale:1 abs, pos:bc, off:0 30, rot:0, fillcolor:#000000"

// addPageNumbers stamps "Page i of total" onto every page of the document
// at inPath and writes the result to outPath. The stamp is merged on top of
// each page's existing graphics; the document's outline, if any, survives
// the pass untouched.
func addPageNumbers(inPath, outPath string, total int) error {
	stamps := make(map[int]*model.Watermark, total)
	for i := 1; i <= total; i++ {
		text := fmt.Sprintf("Page %d of %d", i, total)
		wm, err := api.TextWatermark(text, pageNumberStampDesc, true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("building page number stamp: %w", err)
		}
		stamps[i] = wm
	}

	if err := api.AddWatermarksMapFile(inPath, outPath, stamps, newConfiguration()); err != nil {
		return fmt.Errorf("stamping page numbers: %w", err)
	}
	return nil
}

// writeOutline replaces the document's bookmarks with one flat entry per
// source document, each targeting that document's title page. A merge with
// no sources writes no outline.
func writeOutline(path string, docs []SourceDocument, tocPages int) error {
	if len(docs) == 0 {
		return nil
	}

	bms := make([]pdfcpu.Bookmark, 0, len(docs))
	page := tocPages + 1 // first title page follows the TOC
	for _, doc := range docs {
		bms = append(bms, pdfcpu.Bookmark{Title: doc.Name, PageFrom: page})
		page += doc.PageCount + 1
	}

	if err := api.AddBookmarksFile(path, "", bms, true, newConfiguration()); err != nil {
		return fmt.Errorf("writing outline: %w", err)
	}
	return nil
}
