package merger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// listSourcePDFs returns the mergeable PDFs directly inside the input
// directory, sorted by filename. The requested output name and anything
// sharing its base name are skipped so a previous merge result sitting in
// the same directory is never re-merged.
func (m *Merger) listSourcePDFs() ([]SourceDocument, error) {
	entries, err := os.ReadDir(m.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	reservedPrefix := strings.TrimSuffix(m.OutputName, filepath.Ext(m.OutputName))

	var docs []SourceDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}
		if name == m.OutputName || strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		docs = append(docs, SourceDocument{
			Name: name,
			Path: filepath.Join(m.InputDir, name),
		})
	}

	// Sort by filename to maintain a deterministic merge order.
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	return docs, nil
}

// readPageCounts opens each source once and records its page count.
func (m *Merger) readPageCounts(docs []SourceDocument) ([]int, error) {
	counts := make([]int, len(docs))
	for i := range docs {
		n, err := api.PageCountFile(docs[i].Path)
		if err != nil {
			return nil, fmt.Errorf("reading page count of %s: %w", docs[i].Name, err)
		}
		docs[i].PageCount = n
		counts[i] = n
	}
	return counts, nil
}

// startPages derives each document's first content page from the ordered
// page counts. base is the start page of the first document; every later
// document starts after the previous document's pages plus its title page.
func startPages(counts []int, base int) []int {
	pages := make([]int, len(counts))
	current := base
	for i := range counts {
		if i > 0 {
			current += counts[i-1] + 1
		}
		pages[i] = current
	}
	return pages
}

// uniqueFilename generates a filename that does not yet exist in the given
// directory by suffixing _1, _2, ... before the extension. Only a name that
// stats cleanly counts as taken; any stat failure means the candidate is
// free for our purposes.
func uniqueFilename(dir, base string) string {
	if !fileExists(filepath.Join(dir, base)) {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !fileExists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
