package main

import (
	"log/slog"
	"os"

	"github.com/eee-past-papers/papers/pkg/config"
	"github.com/eee-past-papers/papers/pkg/utils"
	"github.com/lmittmann/tint"
	"github.com/pborman/getopt/v2"
)

type Opts struct {
	cfg     config.Config
	dryRun  bool
	tree    bool
	verbose bool
}

func ParseOpts() Opts {
	// definition
	help := getopt.BoolLong("help", 'h', "Shows the help menu")
	configPath := getopt.StringLong("config", 'c', "", "Path of a TOML config file. Flags override its values")
	root := getopt.StringLong("root", 'r', "", "Path of the archive root (containing the EE* year folders). Defaults to the current directory")
	output := getopt.StringLong("output", 'o', "", "Path of the generated page. Defaults to <root>/index.html")
	bucketUrl := getopt.StringLong("bucket", 'b', "", "Base url every paper link points to")
	yearPrefix := getopt.StringLong("prefix", 'p', "", "Only top-level folders starting with this are indexed. Defaults to EE")
	dryRun := getopt.BoolLong("dry-run", 'n', "Generate the page without writing it")
	tree := getopt.BoolLong("tree", 't', "Print the scanned year/subject/paper tree")
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
	if *output != "" {
		cfg.Output = *output
	}
	if *bucketUrl != "" {
		cfg.BucketUrl = *bucketUrl
	}
	if *yearPrefix != "" {
		cfg.YearPrefix = *yearPrefix
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

	return Opts{
		cfg:     cfg,
		dryRun:  *dryRun,
		tree:    *tree,
		verbose: *verbose,
	}
}
