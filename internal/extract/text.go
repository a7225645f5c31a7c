package extract

import (
	"os"

	"docsort/internal/logging"
)

func (e *Extractor) extractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("failed to read text file", logging.String("path", path), logging.Error(err))
		return ""
	}
	return string(data)
}
