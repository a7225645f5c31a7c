// Package services defines the error taxonomy shared by pipeline stages and
// the triage-bucket mapping derived from it.
package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for per-file failure kinds. Stages tag every failure with
// one of these at the point it occurs so triage never has to guess from
// message text.
var (
	ErrExtraction     = errors.New("text extraction failed")
	ErrClassification = errors.New("classification failed")
	ErrUnsupported    = errors.New("unsupported file format")
	ErrPlacement      = errors.New("placement failed")
	ErrConfiguration  = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later bucket classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrPlacement
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

// Triage bucket names used as _Errors subfolders.
const (
	BucketExtraction     = "text_extraction_failed"
	BucketClassification = "classification_failed"
	BucketUnsupported    = "unsupported_format"
	BucketProcessing     = "processing_error"
)

// BucketFor maps a tagged per-file failure to its triage bucket.
func BucketFor(err error) string {
	switch {
	case errors.Is(err, ErrUnsupported):
		return BucketUnsupported
	case errors.Is(err, ErrExtraction):
		return BucketExtraction
	case errors.Is(err, ErrClassification):
		return BucketClassification
	default:
		return BucketProcessing
	}
}

// BucketForMessage classifies a bare error message by substring match. Only a
// fallback for outcomes that carry no tagged error; stages in this codebase
// always tag.
func BucketForMessage(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "extract text"):
		return BucketExtraction
	case strings.Contains(lower, "classify"):
		return BucketClassification
	case strings.Contains(lower, "unsupported"):
		return BucketUnsupported
	default:
		return BucketProcessing
	}
}
