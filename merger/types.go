package merger

// Merger combines every PDF found in a directory into a single document,
// inserting a generated table of contents, a title page before each source
// document, and footer page numbers across the final output.
type Merger struct {
	InputDir   string
	OutputName string

	strictOffsets bool
	verbose       bool
	tmpDir        string
}

// SourceDocument is one input PDF discovered by the directory scan.
type SourceDocument struct {
	Name      string
	Path      string
	PageCount int
}

// ToCEntry represents a table of contents entry
type ToCEntry struct {
	Title   string // source filename, extension stripped for display
	PageNum int    // page the document's title page lands on
}
