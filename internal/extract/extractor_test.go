package extract_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"docsort/internal/extract"
	"docsort/internal/logging"
)

func TestDetectFileType(t *testing.T) {
	cases := []struct {
		path string
		want extract.FileType
	}{
		{"receipt.jpg", extract.TypeImage},
		{"scan.JPEG", extract.TypeImage},
		{"photo.png", extract.TypeImage},
		{"fax.tiff", extract.TypeImage},
		{"anim.gif", extract.TypeImage},
		{"bitmap.bmp", extract.TypeImage},
		{"statement.pdf", extract.TypePDF},
		{"letter.docx", extract.TypeDocx},
		{"legacy.doc", extract.TypeDocx},
		{"notes.txt", extract.TypeText},
		{"archive.zip", extract.TypeUnknown},
		{"noextension", extract.TypeUnknown},
		{"dir/file.TXT", extract.TypeText},
	}
	for _, tc := range cases {
		if got := extract.DetectFileType(tc.path); got != tc.want {
			t.Errorf("DetectFileType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("  hello world \n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Type != extract.TypeText {
		t.Fatalf("type = %q", result.Type)
	}
	if result.Text != "hello world" {
		t.Fatalf("text = %q", result.Text)
	}
}

func TestExtractWhitespaceOnlyIsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(path, []byte("   \n\t  \n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Text != "" {
		t.Fatalf("whitespace-only file should yield absent text, got %q", result.Text)
	}
}

func TestExtractUnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("binary"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Type != extract.TypeUnknown {
		t.Fatalf("type = %q", result.Type)
	}
	if result.Text != "" {
		t.Fatalf("unknown type should yield absent text, got %q", result.Text)
	}
}

func writeDocx(t *testing.T, path, body string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer file.Close()
	writer := zip.NewWriter(file)
	entry, err := writer.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := entry.Write([]byte(body)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
}

func TestExtractDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Invoice from</w:t></w:r><w:r><w:t xml:space="preserve"> Acme Corp</w:t></w:r></w:p>
    <w:p><w:r><w:t>Total due: $100</w:t></w:r></w:p>
  </w:body>
</w:document>`)
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Type != extract.TypeDocx {
		t.Fatalf("type = %q", result.Type)
	}
	want := "Invoice from Acme Corp\nTotal due: $100"
	if result.Text != want {
		t.Fatalf("text = %q, want %q", result.Text, want)
	}
}

func TestExtractCorruptDocxIsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Type != extract.TypeDocx {
		t.Fatalf("type = %q", result.Type)
	}
	if result.Text != "" {
		t.Fatalf("corrupt docx should yield absent text, got %q", result.Text)
	}
}

func TestExtractImageWithoutOCRIsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(path, []byte("fake image"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	extractor := extract.New(logging.NewNop(), extract.WithTesseractPath(""))
	result := extractor.Extract(context.Background(), path)
	if result.Type != extract.TypeImage {
		t.Fatalf("type = %q", result.Type)
	}
	if result.Text != "" {
		t.Fatalf("missing ocr binary should yield absent text, got %q", result.Text)
	}
}

func TestExtractCorruptPDFIsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 truncated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	result := extract.New(logging.NewNop()).Extract(context.Background(), path)
	if result.Type != extract.TypePDF {
		t.Fatalf("type = %q", result.Type)
	}
	if result.Text != "" {
		t.Fatalf("corrupt pdf should yield absent text, got %q", result.Text)
	}
}
