package pdfrender

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"
)

func renderAndExtract(t *testing.T, in Input) string {
	t.Helper()
	data, err := Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty pdf")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read pdf back: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("plain text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("copy text: %v", err)
	}
	return buf.String()
}

func TestRenderContainsHeaderAndBody(t *testing.T) {
	text := renderAndExtract(t, Input{
		Title:        "Compliance Guide",
		BusinessName: "Acme Foods",
		GeneratedAt:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Body:         "# Compliance Guide\n\n## Tax Compliance\n\nRegister for GST within 30 days.\n\n- File GSTR-3B monthly\n- **Keep invoices for 6 years**",
	})

	for _, want := range []string{"Compliance Guide", "Acme Foods", "Register for GST", "File GSTR-3B monthly"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in extracted text:\n%s", want, text)
		}
	}
	if strings.Contains(text, "**") {
		t.Fatalf("bold markers should be stripped:\n%s", text)
	}
}

func TestRenderBulletsAndNonASCIISurviveExtraction(t *testing.T) {
	text := renderAndExtract(t, Input{
		Title:        "Branding Guide",
		BusinessName: "Chai Point – Indiranagar",
		GeneratedAt:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Body:         "- first item\n- café signage and “voice” guidelines",
	})

	if !strings.Contains(text, "first item") {
		t.Fatalf("expected bullet text in extracted output:\n%s", text)
	}
	if !strings.Contains(text, "café") {
		t.Fatalf("expected accented text to survive cp1252 mapping:\n%s", text)
	}
	// UTF-8 written without translation shows up as these cp1252 artifacts.
	for _, bad := range []string{"â€", "Ã©"} {
		if strings.Contains(text, bad) {
			t.Fatalf("mojibake %q in extracted output:\n%s", bad, text)
		}
	}
}

func TestRenderPaginatesLongBody(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("A reasonably long paragraph line that takes horizontal space on the page.\n")
	}
	data, err := Render(Input{
		Title:        "HR Guide",
		BusinessName: "Acme Foods",
		GeneratedAt:  time.Now().UTC(),
		Body:         b.String(),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read pdf back: %v", err)
	}
	if reader.NumPage() < 2 {
		t.Fatalf("expected pagination, got %d page(s)", reader.NumPage())
	}
}
