// Package extract detects document types from file extensions and pulls
// plain text out of them.
//
// Each backend (raw read, PDF, WordprocessingML, OCR) is attempted once per
// file. A backend that is unavailable or fails on a given file yields absent
// text rather than an error: the pipeline treats missing text on a supported
// type as that file's extraction failure and moves on. Whitespace-only
// output is normalized to absent.
package extract
