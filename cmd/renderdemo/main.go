package main

// Render a sample guide to PDF without calling the AI gateway:
//   go run ./cmd/renderdemo -out ./out/sample_guide.pdf

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"companion-backend/internal/pdfrender"
)

func main() {
	outPath := flag.String("out", "./out/sample_guide.pdf", "output path for the generated PDF")
	flag.Parse()

	data, err := pdfrender.Render(pdfrender.Input{
		Title:        "Business Registration Guide",
		BusinessName: "Acme Foods",
		GeneratedAt:  time.Now().UTC(),
		Body:         sampleBody(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d bytes)\n", *outPath, len(data))
}

func sampleBody() string {
	return `# Business Registration Guide

## Choosing a structure

- Sole proprietorship for single founders testing an idea
- Private limited company for teams raising outside capital
- LLP when partners want limited liability with a light touch

## First filings

1. Reserve the company name
2. Obtain director identification numbers
3. File the incorporation forms with the registrar

**Keep every acknowledgement receipt**; you will need them when opening
the company bank account.`
}
