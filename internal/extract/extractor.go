package extract

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"docsort/internal/deps"
	"docsort/internal/logging"
)

// Extractor dispatches files to the backend matching their detected type.
type Extractor struct {
	logger        *slog.Logger
	tesseractPath string
}

// Option customizes the extractor.
type Option func(*Extractor)

// WithTesseractPath overrides OCR binary resolution (used in tests).
func WithTesseractPath(path string) Option {
	return func(e *Extractor) {
		e.tesseractPath = path
	}
}

// New constructs an extractor, resolving the OCR binary from PATH. A missing
// binary disables the image backend; affected files report absent text.
func New(logger *slog.Logger, opts ...Option) *Extractor {
	e := &Extractor{logger: logging.NewComponentLogger(logger, "extract")}
	if path, err := exec.LookPath(deps.TesseractCommand); err == nil {
		e.tesseractPath = path
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract detects the file's type and runs the matching backend once.
// Failures are logged and reported as absent text, never returned.
func (e *Extractor) Extract(ctx context.Context, path string) Result {
	fileType := DetectFileType(path)
	var text string
	switch fileType {
	case TypeImage:
		text = e.extractImage(ctx, path)
	case TypePDF:
		text = e.extractPDF(path)
	case TypeDocx:
		text = e.extractDocx(path)
	case TypeText:
		text = e.extractText(path)
	default:
		e.logger.Debug("unsupported file type", logging.String("path", path))
	}
	return Result{Type: fileType, Text: strings.TrimSpace(text)}
}
