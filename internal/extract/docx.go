package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"docsort/internal/logging"
)

const docxDocumentPath = "word/document.xml"

// extractDocx reads the WordprocessingML body out of a .docx container.
// Legacy binary .doc files fail the zip open and degrade to absent text,
// matching the behavior for any other unreadable document.
func (e *Extractor) extractDocx(path string) string {
	archive, err := zip.OpenReader(path)
	if err != nil {
		e.logger.Warn("failed to open document archive", logging.String("path", path), logging.Error(err))
		return ""
	}
	defer archive.Close()

	for _, entry := range archive.File {
		if entry.Name != docxDocumentPath {
			continue
		}
		reader, err := entry.Open()
		if err != nil {
			e.logger.Warn("failed to open document body", logging.String("path", path), logging.Error(err))
			return ""
		}
		defer reader.Close()
		text, err := docxText(reader)
		if err != nil {
			e.logger.Warn("failed to parse document body", logging.String("path", path), logging.Error(err))
			return ""
		}
		return text
	}
	e.logger.Warn("document archive has no body", logging.String("path", path))
	return ""
}

// docxText walks the document XML collecting the character data of w:t runs,
// inserting a newline at each paragraph boundary.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var b strings.Builder
	inTextRun := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inTextRun {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
