package textutil

import "strings"

const (
	maxFolderNameLength = 100
	maxFileStemLength   = 80

	// FallbackFolderName replaces folder names that sanitize to nothing.
	FallbackFolderName = "Uncategorized"
	// FallbackFileStem replaces file stems that sanitize to nothing.
	FallbackFileStem = "unnamed_file"
)

// unsafeReplacer maps filesystem-reserved characters to underscores.
var unsafeReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeFolderName converts an arbitrary string into a safe folder name.
// Reserved characters become underscores, leading/trailing dots and spaces
// are stripped, and the result is capped at 100 characters. Spaces inside the
// name are preserved so category labels stay readable.
func SanitizeFolderName(raw string) string {
	name := unsafeReplacer.Replace(raw)
	name = strings.Trim(name, ". ")
	name = truncateRunes(name, maxFolderNameLength)
	name = strings.Trim(name, ". ")
	if name == "" {
		return FallbackFolderName
	}
	return name
}

// SanitizeFileStem converts an arbitrary string into a safe filename stem
// (no extension). Reserved characters and spaces become underscores, runs of
// underscores collapse to one, leading/trailing underscores, dots, and spaces
// are stripped, and the result is capped at 80 characters.
func SanitizeFileStem(raw string) string {
	stem := unsafeReplacer.Replace(raw)
	stem = strings.ReplaceAll(stem, " ", "_")
	for strings.Contains(stem, "__") {
		stem = strings.ReplaceAll(stem, "__", "_")
	}
	stem = strings.Trim(stem, "_. ")
	stem = truncateRunes(stem, maxFileStemLength)
	// Truncation can expose a trailing separator again.
	stem = strings.Trim(stem, "_. ")
	if stem == "" {
		return FallbackFileStem
	}
	return stem
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
