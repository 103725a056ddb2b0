package merger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultOutputName is used when no output filename is requested.
const DefaultOutputName = "merged_pdfs.pdf"

// NewMerger creates a new instance of Merger
func NewMerger(inputDir, outputName string) *Merger {
	if outputName == "" {
		outputName = DefaultOutputName
	}
	return &Merger{
		InputDir:   inputDir,
		OutputName: outputName,
		tmpDir:     os.TempDir(),
	}
}

// SetStrictOffsets selects TOC-length-aware page offsets instead of the
// compatible fixed three-page layout. See startPages.
func (m *Merger) SetStrictOffsets(enable bool) {
	m.strictOffsets = enable
}

// SetVerbose enables progress logging.
func (m *Merger) SetVerbose(enable bool) {
	m.verbose = enable
}

func (m *Merger) logf(format string, args ...interface{}) {
	if m.verbose {
		log.Printf(format, args...)
	}
}

// tempPath allocates a collision-free scratch path for one generated
// artifact of this invocation.
func (m *Merger) tempPath(kind string) string {
	return filepath.Join(m.tmpDir, fmt.Sprintf("pdfmerge-%s-%s.pdf", kind, uuid.NewString()))
}
