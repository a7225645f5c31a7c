// Package textutil sanitizes model-suggested names into filesystem-safe
// folder names and file stems.
//
// Both entry points are pure and never fail: input that cleans down to
// nothing degrades to a fixed fallback string instead of an error.
package textutil
