package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eee-past-papers/papers/pkg/logger"
	"github.com/eee-past-papers/papers/pkg/router"
	"github.com/eee-past-papers/papers/pkg/writer"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(logger.GetDefaultLogger())
	opts := ParseOpts()
	if opts.verbose {
		slog.SetDefault(logger.GetVerboseLogger())
	}
	cfg := opts.cfg

	slog.Info("argv validation", "root", cfg.Root, "source_dir", cfg.SourceDir, "exam_year", cfg.ExamYear, "levels", cfg.Levels, "dry_run", opts.dryRun)

	modules, err := router.BuildModuleTable(os.DirFS(cfg.Root), cfg.Levels)
	if err != nil {
		slog.Error("Cannot list the module folders", tint.Err(err))
		os.Exit(1)
	}

	r := router.NewRouter(modules, router.Options{
		Root:      cfg.Root,
		SourceDir: cfg.SourceDir,
		ExamYear:  cfg.ExamYear,
		DryRun:    opts.dryRun,
	})

	results, err := r.Run()
	if err != nil {
		slog.Error("Cannot route the source folder", tint.Err(err))
		os.Exit(1)
	}

	counts := router.CountOutcomes(results)
	slog.Info("[sorter] Done!",
		"copied", counts[router.OutcomeCopied],
		"planned", counts[router.OutcomePlanned],
		"exists", counts[router.OutcomeExists],
		"not_found", counts[router.OutcomeNotFound],
		"malformed", counts[router.OutcomeMalformed],
		"failed", counts[router.OutcomeFailed])

	if opts.summary {
		fmt.Println(router.RenderSummary(results))
	}

	if opts.report != "" {
		if err := writeReport(opts.report, results); err != nil {
			slog.Error("Could not write the report", "path", opts.report, tint.Err(err))
		}
	}
}

func writeReport(path string, results []router.Result) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := writer.NewWriter[[]router.Result](filepath.Dir(absPath))
	if err != nil {
		return err
	}

	if err := w.JsonWrite(filepath.Base(absPath), results, true); err != nil {
		return err
	}

	slog.Info("[sorter] report written", "path", absPath)
	return nil
}
