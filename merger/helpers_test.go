package merger

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"
)

// writeSamplePDF creates a PDF at path with the given number of pages, each
// carrying a recognizable text line.
func writeSamplePDF(t *testing.T, path string, pages int, text string) {
	t.Helper()
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(72, 100, fmt.Sprintf("%s page %d", text, i))
	}
	require.NoError(t, pdf.OutputFileAndClose(path))
}

// pageTexts extracts the plain text of every page of the PDF at path. This
// only observes the page content streams themselves, so it sees body text,
// TOC entries and title pages, but not text drawn inside form XObjects.
func pageTexts(t *testing.T, path string) []string {
	t.Helper()
	f, reader, err := pdflib.Open(path)
	require.NoError(t, err)
	defer f.Close()

	texts := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		require.NoError(t, err)
		texts = append(texts, text)
	}
	return texts
}

// documentText joins all page texts into one searchable string.
func documentText(t *testing.T, path string) string {
	t.Helper()
	return strings.Join(pageTexts(t, path), "\n")
}

// pageStreamText trims the document at path down to page pageNr and returns
// every stream of the resulting single-page file, inflated. Footer stamps
// live in form XObjects referenced only by their page, so the trimmed file
// carries exactly that page's stamp and no other.
func pageStreamText(t *testing.T, path string, pageNr int) string {
	t.Helper()
	trimmed := filepath.Join(t.TempDir(), "page.pdf")
	err := api.TrimFile(path, trimmed, []string{strconv.Itoa(pageNr)}, newConfiguration())
	require.NoError(t, err)
	return streamText(t, trimmed)
}

// streamText inflates every stream object in the PDF at path and returns the
// concatenation. Stream bodies that are not flate-compressed are included
// raw. Unlike plain-text extraction this observes text operators anywhere in
// the file, including form XObjects.
func streamText(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out strings.Builder
	rest := data
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		body := rest[i+len("stream"):]
		body = bytes.TrimPrefix(body, []byte("\r\n"))
		body = bytes.TrimPrefix(body, []byte("\n"))
		j := bytes.Index(body, []byte("endstream"))
		if j < 0 {
			break
		}
		if zr, err := zlib.NewReader(bytes.NewReader(body[:j])); err == nil {
			if inflated, err := io.ReadAll(zr); err == nil {
				out.Write(inflated)
			}
			zr.Close()
		} else {
			out.Write(body[:j])
		}
		rest = body[j+len("endstream"):]
	}
	return out.String()
}

// requireFooter asserts that page pageNr of the PDF at path carries exactly
// its own "Page X of N" footer stamp.
func requireFooter(t *testing.T, path string, pageNr, total int) {
	t.Helper()
	text := pageStreamText(t, path, pageNr)
	require.Contains(t, text, fmt.Sprintf("Page %d of %d", pageNr, total))
	for i := 1; i <= total; i++ {
		if i == pageNr {
			continue
		}
		require.NotContains(t, text, fmt.Sprintf("Page %d of %d", i, total),
			"page %d must not carry page %d's footer", pageNr, i)
	}
}

// testMerger returns a Merger whose temp artifacts land in a per-test
// directory that the testing package cleans up.
func testMerger(t *testing.T, inputDir, outputName string) *Merger {
	t.Helper()
	m := NewMerger(inputDir, outputName)
	m.tmpDir = t.TempDir()
	return m
}
