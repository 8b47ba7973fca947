// Package config holds the settings shared by the sorter and the indexer.
// Every value has a default matching the published archive, an optional TOML
// file can override them and command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eee-past-papers/papers/pkg/constants"
	"github.com/pelletier/go-toml/v2"
)

type Page struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Author      string `toml:"author"`
	ContactUser string `toml:"contact_user"`
	ContactHost string `toml:"contact_host"`
}

type Config struct {
	// archive root containing the level folders (EE1..EE4) and year folders (EE18, ...)
	Root string `toml:"root"`

	// sorter
	ExamYear  string   `toml:"exam_year"`
	SourceDir string   `toml:"source_dir"` // defaults to <root>/<exam_year>
	Levels    []string `toml:"levels"`

	// indexer
	YearPrefix string `toml:"year_prefix"`
	Output     string `toml:"output"` // defaults to <root>/index.html
	BucketUrl  string `toml:"bucket_url"`
	Page       Page   `toml:"page"`
}

func Default() Config {
	return Config{
		Root:       ".",
		ExamYear:   constants.LayoutDefaultExamYear,
		Levels:     append([]string(nil), constants.LayoutLevels...),
		YearPrefix: constants.LayoutYearPrefix,
		BucketUrl:  constants.WebBucketUrl,
		Page: Page{
			Title:       constants.WebPageTitle,
			Description: constants.WebPageDescription,
			Author:      constants.WebPageAuthor,
			ContactUser: constants.WebContactUser,
			ContactHost: constants.WebContactHost,
		},
	}
}

// Load decodes the TOML file at path on top of Default(). Keys missing from
// the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve turns Root, SourceDir and Output into absolute paths, filling the
// derived defaults.
func (c *Config) Resolve() error {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return err
	}
	c.Root = root

	if c.SourceDir == "" {
		c.SourceDir = filepath.Join(c.Root, c.ExamYear)
	} else if c.SourceDir, err = filepath.Abs(c.SourceDir); err != nil {
		return err
	}

	if c.Output == "" {
		c.Output = filepath.Join(c.Root, constants.OutputIndexFilename)
	} else if c.Output, err = filepath.Abs(c.Output); err != nil {
		return err
	}

	c.BucketUrl = strings.TrimRight(c.BucketUrl, "/")
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ExamYear) == "" {
		return errors.New("exam year must not be empty")
	}
	if len(c.Levels) == 0 {
		return errors.New("at least one level prefix is required")
	}
	for _, level := range c.Levels {
		if len(level) != constants.LayoutLevelLen {
			return fmt.Errorf("level prefix %q must be %d characters long", level, constants.LayoutLevelLen)
		}
	}
	if c.YearPrefix == "" {
		return errors.New("year prefix must not be empty")
	}
	if c.BucketUrl == "" {
		return errors.New("bucket url must not be empty")
	}
	return nil
}

// LoadOrDefault is Load when path is set and Default otherwise.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
