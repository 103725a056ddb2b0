package merger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrNoPDFs reports that the input directory holds nothing to merge. It is
// an expected outcome, not a failure.
var ErrNoPDFs = errors.New("no PDF files found to merge")

// compatTOCBase is the first document's start page in compatible mode,
// which assumes the table of contents always occupies exactly three pages.
// Strict mode replaces it with the rendered TOC's true length plus one.
const compatTOCBase = 4

// Merge combines every PDF in the input directory into a single document
// and returns the path it was written to. The output carries the generated
// TOC pages first, then a title page followed by the content pages of each
// source document in filename order, with a flat outline entry per document
// and "Page X of N" footers across all pages.
func (m *Merger) Merge() (string, error) {
	docs, err := m.listSourcePDFs()
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", ErrNoPDFs
	}

	counts, err := m.readPageCounts(docs)
	if err != nil {
		return "", err
	}
	m.logf("PDF page counts: %v", counts)

	pages := startPages(counts, compatTOCBase)
	tocPath, err := m.createTOC(tocEntries(docs, pages))
	if err != nil {
		return "", err
	}
	// Deferred by reference: strict mode may swap in a re-rendered TOC.
	defer func() { os.Remove(tocPath) }()

	tocPages, err := api.PageCountFile(tocPath)
	if err != nil {
		return "", fmt.Errorf("reading table of contents page count: %w", err)
	}

	if m.strictOffsets && tocPages+1 != compatTOCBase {
		// The entry page numbers do not influence wrapping or pagination,
		// so a single re-render with the corrected base suffices.
		pages = startPages(counts, tocPages+1)
		os.Remove(tocPath)
		tocPath, err = m.createTOC(tocEntries(docs, pages))
		if err != nil {
			return "", err
		}
	}
	m.logf("Final page numbers: %v", pages)

	inputs := make([]string, 0, 2*len(docs)+1)
	inputs = append(inputs, tocPath)
	var titlePaths []string
	defer func() {
		for _, p := range titlePaths {
			os.Remove(p)
		}
	}()
	for _, doc := range docs {
		titlePath, err := m.createTitlePage(doc.Name)
		if err != nil {
			return "", err
		}
		titlePaths = append(titlePaths, titlePath)
		inputs = append(inputs, titlePath, doc.Path)
	}

	// Assemble [TOC] [title, content]xN into a scratch document. pdfcpu's
	// own per-file merge bookmarks are disabled; the outline is written
	// explicitly below so entries target the title pages.
	assembled := m.tempPath("assembled")
	conf := newConfiguration()
	conf.CreateBookmarks = false
	if err := api.MergeCreateFile(inputs, assembled, false, conf); err != nil {
		return "", fmt.Errorf("assembling merged document: %w", err)
	}
	defer os.Remove(assembled)

	if err := writeOutline(assembled, docs, tocPages); err != nil {
		return "", err
	}

	total, err := api.PageCountFile(assembled)
	if err != nil {
		return "", fmt.Errorf("reading merged page count: %w", err)
	}

	outName := m.OutputName
	if _, err := os.Stat(filepath.Join(m.InputDir, outName)); err == nil {
		outName = uniqueFilename(m.InputDir, outName)
	}
	outPath := filepath.Join(m.InputDir, outName)

	m.logf("Writing merged PDF to: %s", outPath)
	if err := addPageNumbers(assembled, outPath, total); err != nil {
		return "", err
	}

	m.logf("PDF merge complete!")
	return outPath, nil
}

func tocEntries(docs []SourceDocument, pages []int) []ToCEntry {
	entries := make([]ToCEntry, len(docs))
	for i, doc := range docs {
		entries[i] = ToCEntry{Title: doc.Name, PageNum: pages[i]}
	}
	return entries
}
