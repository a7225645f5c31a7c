package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"docsort/internal/classifier"
	"docsort/internal/config"
	"docsort/internal/extract"
	"docsort/internal/logging"
	"docsort/internal/organizer"
	"docsort/internal/report"
	"docsort/internal/services/llm"
)

const (
	lockFileName   = ".docsort.lock"
	reportFileName = "organization_report.txt"
)

func newOrganizeCommand(configFlag *string) *cobra.Command {
	var moveFlag bool
	var dryRunFlag bool
	var verboseFlag bool

	cmd := &cobra.Command{
		Use:   "organize <input-folder> <output-folder>",
		Short: "Classify and file every supported document under the input folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if moveFlag {
				cfg.Organize.Mode = organizer.ModeMove
			}
			if dryRunFlag {
				cfg.Organize.DryRun = true
			}
			if verboseFlag {
				cfg.Logging.Level = "debug"
			}
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("no LLM API key configured; set llm.api_key or export DOCSORT_LLM_API_KEY")
			}

			inputDir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input folder: %w", err)
			}
			outputRoot, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve output folder: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()))

			// Validate the input before mutating anything on the output side:
			// a bad input root must not leave a fresh outputRoot or lock file.
			files, err := organizer.Discover(inputDir)
			if err != nil {
				return err
			}

			if !cfg.Organize.DryRun {
				if err := os.MkdirAll(outputRoot, 0o755); err != nil {
					return fmt.Errorf("create output folder: %w", err)
				}
				lock := flock.New(filepath.Join(outputRoot, lockFileName))
				ok, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire output lock: %w", err)
				}
				if !ok {
					return fmt.Errorf("another docsort run is organizing into %s", outputRoot)
				}
				defer func() {
					_ = lock.Unlock()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting run",
				logging.Int("files", len(files)),
				logging.String("mode", cfg.Organize.Mode),
				logging.Bool("dry_run", cfg.Organize.DryRun),
			)

			client := llm.NewClient(llm.Config{
				APIKey:         cfg.LLM.APIKey,
				BaseURL:        cfg.LLM.BaseURL,
				Model:          cfg.LLM.Model,
				TimeoutSeconds: cfg.LLM.TimeoutSeconds,
			})
			org := organizer.New(organizer.Options{
				OutputRoot:   outputRoot,
				Mode:         cfg.Organize.Mode,
				DryRun:       cfg.Organize.DryRun,
				VerifyCopies: cfg.Organize.VerifyCopies,
				Extractor:    extract.New(logger),
				Classifier:   classifier.New(client, logger),
				Logger:       logger,
			})

			// The summary covers whatever completed, interrupted or not.
			outcomes := org.Run(ctx, files)
			summary := report.Summarize(outcomes, cfg.Organize.Mode, cfg.Organize.DryRun)
			printSummary(cmd.OutOrStdout(), outcomes, summary)

			if !cfg.Organize.DryRun && len(outcomes) > 0 {
				reportPath := filepath.Join(outputRoot, reportFileName)
				if err := os.WriteFile(reportPath, []byte(report.Render(outcomes, summary)), 0o644); err != nil {
					logger.Warn("failed to write run report", logging.Error(err))
				}
			}
			return ctx.Err()
		},
	}

	cmd.Flags().BoolVar(&moveFlag, "move", false, "Move files instead of copying them")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Plan the run without touching the output folder")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	return cmd
}
