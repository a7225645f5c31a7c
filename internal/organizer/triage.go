package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"docsort/internal/fileutil"
	"docsort/internal/logging"
	"docsort/internal/services"
)

const (
	errorsDirName = "_Errors"
	sidecarSuffix = ".error_info.txt"
)

// triageFailures copies every failed file into outputRoot/_Errors/<bucket>/
// and writes a sidecar describing the failure. The original is always copied,
// never moved, regardless of run mode. Triage is best-effort: a copy or
// sidecar failure is logged and the remaining failures are still processed.
func (o *Organizer) triageFailures(outcomes []Outcome) {
	for _, outcome := range outcomes {
		if outcome.Success {
			continue
		}
		bucket := bucketFor(outcome)
		bucketDir := filepath.Join(o.opts.OutputRoot, errorsDirName, bucket)
		if err := os.MkdirAll(bucketDir, 0o755); err != nil {
			o.logger.Warn("failed to create error bucket",
				logging.String("bucket", bucket),
				logging.Error(err),
			)
			continue
		}
		target := fileutil.ResolveCollisionOnDisk(filepath.Join(bucketDir, outcome.OriginalName))
		if err := fileutil.CopyFile(outcome.OriginalPath, target); err != nil {
			o.logger.Warn("failed to copy error file",
				logging.String("file", outcome.OriginalName),
				logging.Error(err),
			)
			continue
		}
		if err := o.writeSidecar(target, outcome, bucket); err != nil {
			o.logger.Warn("failed to write error sidecar",
				logging.String("file", outcome.OriginalName),
				logging.Error(err),
			)
			continue
		}
		o.logger.Info("triaged failed file",
			logging.String("file", outcome.OriginalName),
			logging.String("bucket", bucket),
		)
	}
}

// bucketFor prefers the tagged error and falls back to message matching for
// outcomes that carry none.
func bucketFor(outcome Outcome) string {
	if outcome.err != nil {
		return services.BucketFor(outcome.err)
	}
	return services.BucketForMessage(outcome.ErrorMessage)
}

func (o *Organizer) writeSidecar(target string, outcome Outcome, bucket string) error {
	sidecar := target + sidecarSuffix
	body := fmt.Sprintf("Original file: %s\nError category: %s\nError message: %s\nProcessing date: %s\n",
		outcome.OriginalPath, bucket, outcome.ErrorMessage, o.now().Format(time.RFC3339))
	return os.WriteFile(sidecar, []byte(body), 0o644)
}
