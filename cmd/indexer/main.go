package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eee-past-papers/papers/pkg/config"
	"github.com/eee-past-papers/papers/pkg/index"
	"github.com/eee-past-papers/papers/pkg/logger"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(logger.GetDefaultLogger())
	opts := ParseOpts()
	if opts.verbose {
		slog.SetDefault(logger.GetVerboseLogger())
	}
	cfg := opts.cfg

	slog.Info("argv validation", "root", cfg.Root, "output", cfg.Output, "bucket", cfg.BucketUrl, "year_prefix", cfg.YearPrefix, "dry_run", opts.dryRun)

	tree, err := index.Scan(os.DirFS(cfg.Root), cfg.YearPrefix)
	if err != nil {
		slog.Error("Cannot scan the archive", tint.Err(err))
		os.Exit(1)
	}

	stats := tree.Stats()
	slog.Info("[indexer] archive scanned", "years", stats.Years, "subjects", stats.Subjects, "papers", stats.Papers)

	if opts.tree {
		fmt.Println(index.Preview(tree, cfg.Root))
	}

	gen, err := index.NewIndexGenerator(cfg.Output, cfg.BucketUrl, pageFromConfig(cfg.Page))
	if err != nil {
		slog.Error("Cannot create the index generator", tint.Err(err))
		os.Exit(1)
	}

	content := gen.Render(tree)

	prev, found, err := gen.Previous()
	switch {
	case err != nil:
		slog.Warn("[indexer] could not read the previous index", "path", cfg.Output, "error", err)
	case found:
		slog.Info("[indexer] previous index", "years", prev.Years, "subjects", prev.Subjects, "papers", prev.Papers, "papers_delta", stats.Papers-prev.Papers)
	default:
		slog.Debug("[indexer] no previous index", "path", cfg.Output)
	}

	if opts.dryRun {
		slog.Info("[indexer] dry run, nothing written", "bytes", len(content))
		return
	}

	slog.Info("[indexer] Writing to file...", "path", cfg.Output)
	if err := gen.Write(content); err != nil {
		slog.Error("Updating the file failed", tint.Err(err))
		os.Exit(1)
	}
}

func pageFromConfig(p config.Page) index.Page {
	page := index.DefaultPage()
	page.Title = p.Title
	page.Description = p.Description
	page.Author = p.Author
	page.ContactUser = p.ContactUser
	page.ContactHost = p.ContactHost
	return page
}
