package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// maxCollisionProbes bounds the numbered-suffix search before the timestamp
// fallback takes over.
const maxCollisionProbes = 999

// ResolveCollision returns desired unchanged when exists reports it free.
// Otherwise it probes stem_001.ext, stem_002.ext, and so on, returning the
// first free candidate. Past 999 probes it returns stem_<epoch>.ext without a
// further existence check; that last-resort race is accepted.
//
// The resolver performs no locking. Callers that claim the returned path must
// treat resolve-then-claim as one critical section.
func ResolveCollision(desired string, exists func(string) bool) string {
	if !exists(desired) {
		return desired
	}
	dir := filepath.Dir(desired)
	ext := filepath.Ext(desired)
	stem := strings.TrimSuffix(filepath.Base(desired), ext)
	for counter := 1; counter <= maxCollisionProbes; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%03d%s", stem, counter, ext))
		if !exists(candidate) {
			return candidate
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, time.Now().Unix(), ext))
}

// ResolveCollisionOnDisk resolves desired against the real filesystem.
func ResolveCollisionOnDisk(desired string) string {
	return ResolveCollision(desired, Exists)
}
