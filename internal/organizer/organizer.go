package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"docsort/internal/classifier"
	"docsort/internal/extract"
	"docsort/internal/fileutil"
	"docsort/internal/logging"
	"docsort/internal/services"
	"docsort/internal/textutil"
)

const (
	// ModeCopy leaves originals in place; ModeMove removes them after placement.
	ModeCopy = "copy"
	ModeMove = "move"

	progressLogInterval = 50
)

// TextExtractor produces the text content of a file, tagged with its type.
type TextExtractor interface {
	Extract(ctx context.Context, path string) extract.Result
}

// Classifier suggests a category and filename for extracted text.
type Classifier interface {
	Classify(ctx context.Context, originalName, text string) (classifier.Suggestion, error)
}

// Options configures a pipeline run.
type Options struct {
	OutputRoot   string
	Mode         string
	DryRun       bool
	VerifyCopies bool
	Extractor    TextExtractor
	Classifier   Classifier
	Logger       *slog.Logger
}

// Organizer drives the per-file pipeline over a discovered file list.
type Organizer struct {
	opts   Options
	logger *slog.Logger

	// now is injectable for sidecar timestamp tests.
	now func() time.Time
}

func New(opts Options) *Organizer {
	if opts.Mode == "" {
		opts.Mode = ModeCopy
	}
	return &Organizer{
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "organizer"),
		now:    time.Now,
	}
}

// Run processes every file through extract, classify, and place, collecting
// one Outcome per file in input order. Per-file failures never abort the run;
// cancellation is honored between files so the file in flight completes.
// Failed files are triaged into _Errors buckets unless dry-run.
func (o *Organizer) Run(ctx context.Context, files []string) []Outcome {
	outcomes := make([]Outcome, 0, len(files))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("run interrupted; remaining files skipped",
				logging.Int("processed", i),
				logging.Int("remaining", len(files)-i),
			)
			break
		}
		outcomes = append(outcomes, o.processFile(ctx, path))
		if (i+1)%progressLogInterval == 0 {
			o.logger.Info("progress",
				logging.Int("processed", i+1),
				logging.Int("total", len(files)),
			)
		}
	}
	if !o.opts.DryRun {
		o.triageFailures(outcomes)
	}
	return outcomes
}

// processFile runs one file through the pipeline. Each stage is a terminal
// failure point: the first failure finalizes the outcome and later stages are
// skipped.
func (o *Organizer) processFile(ctx context.Context, path string) Outcome {
	outcome := Outcome{
		OriginalName: filepath.Base(path),
		OriginalPath: path,
	}
	o.logger.Info("processing file", logging.String("file", outcome.OriginalName))

	result := o.opts.Extractor.Extract(ctx, path)
	if result.Type == extract.TypeUnknown {
		return o.fail(outcome, services.Wrap(services.ErrUnsupported, "extract", "detect type",
			fmt.Sprintf("Unsupported file format: %s", filepath.Ext(path)), nil))
	}
	if result.Text == "" {
		return o.fail(outcome, services.Wrap(services.ErrExtraction, "extract", "read content",
			fmt.Sprintf("Could not extract text from %s file", result.Type), nil))
	}

	suggestion, err := o.opts.Classifier.Classify(ctx, outcome.OriginalName, result.Text)
	if err != nil {
		return o.fail(outcome, services.Wrap(services.ErrClassification, "classify", "request suggestion",
			"Could not classify file content", err))
	}
	outcome.Category = textutil.SanitizeFolderName(suggestion.Category)
	outcome.NewFilename = textutil.SanitizeFileStem(suggestion.Filename)

	finalPath, err := o.place(path, outcome.Category, outcome.NewFilename)
	if err != nil {
		return o.fail(outcome, err)
	}
	outcome.Success = true
	outcome.FinalPath = finalPath
	o.logger.Info("file placed",
		logging.String("file", outcome.OriginalName),
		logging.String("category", outcome.Category),
		logging.String("target", finalPath),
	)
	return outcome
}

func (o *Organizer) fail(outcome Outcome, err error) Outcome {
	outcome.Success = false
	outcome.err = err
	outcome.ErrorMessage = err.Error()
	o.logger.Warn("file failed",
		logging.String("file", outcome.OriginalName),
		logging.Error(err),
	)
	return outcome
}

// place builds the target path from sanitized parts and performs the copy or
// move. In dry-run mode it synthesizes a DRY_RUN placeholder path and touches
// nothing.
func (o *Organizer) place(src, category, stem string) (string, error) {
	ext := filepath.Ext(src)
	if o.opts.DryRun {
		return filepath.Join("DRY_RUN", category, stem+ext), nil
	}

	categoryDir := filepath.Join(o.opts.OutputRoot, category)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrPlacement, "place", "create category folder", "", err)
	}
	target := fileutil.ResolveCollisionOnDisk(filepath.Join(categoryDir, stem+ext))

	var err error
	switch {
	case o.opts.Mode == ModeMove:
		err = fileutil.MoveFile(src, target)
	case o.opts.VerifyCopies:
		err = fileutil.CopyFileVerified(src, target)
	default:
		err = fileutil.CopyFile(src, target)
	}
	if err != nil {
		return "", services.Wrap(services.ErrPlacement, "place", o.opts.Mode, "", err)
	}
	return target, nil
}
