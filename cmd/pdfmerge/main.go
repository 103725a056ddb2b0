package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opd-ai/pdfmerge/merger"
)

var (
	mergeFlag = flag.Bool("merge", false, "Merge the PDF files found in the input directory")
	directory = flag.String("dir", "", "Directory containing the PDF files to merge")
	name      = flag.String("n", merger.DefaultOutputName, "Output filename")
	strict    = flag.Bool("strict", false, "Compute TOC page numbers from the rendered TOC length instead of the fixed three-page layout")
)

// main.go
func main() {
	flag.Parse()

	if !*mergeFlag {
		fmt.Println("Nothing to do: pass -merge to merge a directory of PDFs")
		flag.Usage()
		os.Exit(1)
	}

	if *directory == "" {
		fmt.Println("Error: please specify a directory using -dir")
		os.Exit(1)
	}

	dir, err := filepath.Abs(*directory)
	if err != nil {
		fmt.Printf("Error: resolving directory: %v\n", err)
		os.Exit(1)
	}
	info, err := os.Stat(dir)
	if err != nil {
		fmt.Printf("Error: directory does not exist: %s\n", dir)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Printf("Error: not a directory: %s\n", dir)
		os.Exit(1)
	}

	m := merger.NewMerger(dir, *name)
	m.SetStrictOffsets(*strict)
	m.SetVerbose(true)

	outPath, err := m.Merge()
	if errors.Is(err, merger.ErrNoPDFs) {
		fmt.Println("No PDF files found to merge")
		return
	}
	if err != nil {
		fmt.Printf("Error merging PDFs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged PDF written to %s\n", outPath)
}
