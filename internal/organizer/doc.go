// Package organizer runs the per-file pipeline: discover supported files,
// extract their text, classify them, and place them under sanitized category
// folders. Failed files are triaged into _Errors buckets with a sidecar
// describing what went wrong.
package organizer
