package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/eee-past-papers/papers/pkg/config"
	"github.com/eee-past-papers/papers/pkg/utils"
	"github.com/lmittmann/tint"
	"github.com/pborman/getopt/v2"
)

type Opts struct {
	cfg     config.Config
	dryRun  bool
	summary bool
	verbose bool
	report  string
}

func ParseOpts() Opts {
	// definition
	help := getopt.BoolLong("help", 'h', "Shows the help menu")
	configPath := getopt.StringLong("config", 'c', "", "Path of a TOML config file. Flags override its values")
	root := getopt.StringLong("root", 'r', "", "Path of the archive root (containing EE1..EE4). Defaults to the current directory")
	examYear := getopt.StringLong("year", 'y', "", "Exam year of the files to sort, used in target filenames. Defaults to 2018")
	sourceDir := getopt.StringLong("source", 's', "", "Path of the folder with the unsorted files. Defaults to <root>/<year>")
	levels := getopt.StringLong("levels", 'l', "", "Comma separated level prefixes. Defaults to EE1,EE2,EE3,EE4")
	report := getopt.StringLong("report", 0, "", "Write the outcome of every file as JSON to this path")
	dryRun := getopt.BoolLong("dry-run", 'n', "Resolve targets without copying anything")
	summary := getopt.BoolLong("summary", 'S', "Print a table of the routed files at the end")
	verbose := getopt.BoolLong("verbose", 'v', "Enable debug logging")

	// parsing
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		slog.Error("Could not load the config file", tint.Err(err))
		os.Exit(1)
	}

	if *root != "" {
		cfg.Root = *root
	}
	if *examYear != "" {
		cfg.ExamYear = *examYear
	}
	if *sourceDir != "" {
		cfg.SourceDir = *sourceDir
	}
	if *levels != "" {
		cfg.Levels = strings.Split(*levels, ",")
	}

	if err := cfg.Resolve(); err != nil {
		slog.Error("Cannot resolve the configured paths", tint.Err(err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", tint.Err(err))
		os.Exit(2)
	}

	rootExists, err := utils.DoFolderExists(cfg.Root)
	if err != nil {
		slog.Error("Cannot stat the archive root", tint.Err(err))
		os.Exit(1)
	}
	if !rootExists {
		slog.Error("You must set the --root flag to an existing directory.", "root", cfg.Root)
		os.Exit(2)
	}

	sourceExists, err := utils.DoFolderExists(cfg.SourceDir)
	if err != nil {
		slog.Error("Cannot stat the source folder", tint.Err(err))
		os.Exit(1)
	}
	if !sourceExists {
		slog.Error("You must set the --source flag (or --year) to an existing directory.", "source", cfg.SourceDir)
		os.Exit(2)
	}

	return Opts{
		cfg:     cfg,
		dryRun:  *dryRun,
		summary: *summary,
		verbose: *verbose,
		report:  *report,
	}
}
