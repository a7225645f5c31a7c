package extract

import (
	"context"
	"os/exec"
	"strings"

	"docsort/internal/logging"
)

// extractImage shells out to tesseract, reading the recognized text from
// stdout. An unavailable binary behaves like any other backend failure.
func (e *Extractor) extractImage(ctx context.Context, path string) string {
	if e.tesseractPath == "" {
		e.logger.Warn("ocr unavailable; install tesseract to extract text from images",
			logging.String("path", path),
		)
		return ""
	}
	cmd := exec.CommandContext(ctx, e.tesseractPath, path, "stdout")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		e.logger.Warn("ocr failed",
			logging.String("path", path),
			logging.String("stderr", strings.TrimSpace(stderr.String())),
			logging.Error(err),
		)
		return ""
	}
	return string(output)
}
