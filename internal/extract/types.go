package extract

import (
	"path/filepath"
	"strings"
)

// FileType tags which extraction backend handles a file.
type FileType string

const (
	TypeImage   FileType = "image"
	TypePDF     FileType = "pdf"
	TypeDocx    FileType = "docx"
	TypeText    FileType = "text"
	TypeUnknown FileType = "unknown"
)

// typeByExtension is the fixed allow-list of supported extensions.
var typeByExtension = map[string]FileType{
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".png":  TypeImage,
	".bmp":  TypeImage,
	".tiff": TypeImage,
	".gif":  TypeImage,
	".pdf":  TypePDF,
	".docx": TypeDocx,
	".doc":  TypeDocx,
	".txt":  TypeText,
}

// DetectFileType maps a path's extension to its backend tag. Anything outside
// the allow-list is TypeUnknown.
func DetectFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	if fileType, ok := typeByExtension[ext]; ok {
		return fileType
	}
	return TypeUnknown
}

// IsSupported reports whether the path's extension is in the allow-list.
func IsSupported(path string) bool {
	return DetectFileType(path) != TypeUnknown
}

// Result pairs the detected type with the extracted text. Text is empty when
// extraction produced nothing usable; for supported types that signals an
// extraction failure, for TypeUnknown it is the only possible outcome.
type Result struct {
	Type FileType
	Text string
}
