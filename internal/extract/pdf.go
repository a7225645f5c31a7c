package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"docsort/internal/logging"
)

func (e *Extractor) extractPDF(path string) (text string) {
	// The pdf library panics on some malformed cross-reference tables;
	// a corrupt file must degrade to absent text, not crash the run.
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Warn("pdf extraction panicked",
				logging.String("path", path),
				logging.Error(fmt.Errorf("%v", rec)),
			)
			text = ""
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		e.logger.Warn("failed to open pdf", logging.String("path", path), logging.Error(err))
		return ""
	}
	defer file.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		e.logger.Warn("failed to extract pdf text", logging.String("path", path), logging.Error(err))
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		e.logger.Warn("failed to read pdf text", logging.String("path", path), logging.Error(err))
		return ""
	}
	return buf.String()
}
