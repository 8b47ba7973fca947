package router

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eee-past-papers/papers/pkg/utils"
	"github.com/eee-past-papers/papers/pkg/writer"
)

var ErrTargetExists = errors.New("target already exists")

type Outcome int

const (
	OutcomeCopied Outcome = iota
	OutcomePlanned
	OutcomeExists
	OutcomeNotFound
	OutcomeMalformed
	OutcomeFailed
)

var outcomeName = map[Outcome]string{
	OutcomeCopied:    "copied",
	OutcomePlanned:   "planned",
	OutcomeExists:    "exists",
	OutcomeNotFound:  "not found",
	OutcomeMalformed: "malformed",
	OutcomeFailed:    "failed",
}

func (o Outcome) String() string {
	return outcomeName[o]
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type Result struct {
	Source       string  `json:"source"`
	Level        string  `json:"level,omitempty"`
	ModuleNumber string  `json:"moduleNumber,omitempty"`
	Module       string  `json:"module,omitempty"`
	Variant      Variant `json:"variant"`
	Target       string  `json:"target,omitempty"`
	Outcome      Outcome `json:"outcome"`
	Err          error   `json:"-"`
}

type Options struct {
	Root      string // archive root, absolute
	SourceDir string // folder holding the unsorted files, absolute
	ExamYear  string
	DryRun    bool
}

type Router struct {
	opts    Options
	modules ModuleTable
}

func NewRouter(modules ModuleTable, opts Options) *Router {
	return &Router{opts: opts, modules: modules}
}

// Run routes every regular file of the source folder in name order. Problems
// with single files end up in their Result, only a source folder that cannot
// be listed is returned as an error.
func (r *Router) Run() ([]Result, error) {
	names, err := utils.ListFileNames(os.DirFS(r.opts.SourceDir), ".")
	if err != nil {
		return nil, fmt.Errorf("listing source folder %s: %w", r.opts.SourceDir, err)
	}

	slog.Info("[sorter] source folder scanned", "path", r.opts.SourceDir, "files", len(names))

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, r.Route(filepath.Join(r.opts.SourceDir, name)))
	}

	return results, nil
}

// Route copies a single source file into its module folder.
func (r *Router) Route(srcPath string) Result {
	res := Result{Source: filepath.Base(srcPath)}
	log := slog.With("file", res.Source)

	src, err := ParseSourceName(res.Source)
	if err != nil {
		log.Warn("[sorter] skipping file with unexpected name", "error", err)
		res.Outcome, res.Err = OutcomeMalformed, err
		return res
	}
	res.Level, res.ModuleNumber, res.Variant = src.Level, src.ModuleNumber, src.Variant

	matches := r.modules.Matches(src.Level, src.ModuleNumber)
	if len(matches) == 0 {
		log.Warn(fmt.Sprintf("[sorter] Could not find: %s-%s", src.Level, src.ModuleNumber))
		res.Outcome = OutcomeNotFound
		res.Err = fmt.Errorf("%w: %s-%s", ErrModuleNotFound, src.Level, src.ModuleNumber)
		return res
	}
	if len(matches) > 1 {
		log.Warn("[sorter] module number is ambiguous, using the first match", "candidates", matches, "module", matches[0])
	}
	res.Module = matches[0]

	w, err := writer.NewWriter[[]byte](filepath.Join(r.opts.Root, src.Level, res.Module))
	if err != nil {
		log.Error("[sorter] cannot open module folder", "module", res.Module, "error", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}

	targetName := TargetName(r.opts.ExamYear, src.Variant)
	res.Target = w.GetFilePath(targetName)
	log = log.With("target", res.Target)

	exists, err := w.Exists(targetName)
	if err != nil {
		log.Error("[sorter] cannot check target", "error", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if exists {
		log.Info("[sorter] Already exists")
		res.Outcome, res.Err = OutcomeExists, ErrTargetExists
		return res
	}

	if r.opts.DryRun {
		log.Info("[sorter] would copy", "module", res.Module, "variant", src.Variant)
		res.Outcome = OutcomePlanned
		return res
	}

	if err := w.CopyIn(srcPath, targetName); err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.Info("[sorter] Already exists")
			res.Outcome, res.Err = OutcomeExists, ErrTargetExists
			return res
		}

		log.Error("[sorter] copy failed", "error", err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}

	log.Info("[sorter] Copied", "module", res.Module, "variant", src.Variant)
	res.Outcome = OutcomeCopied
	return res
}
