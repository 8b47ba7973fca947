package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eee-past-papers/papers/pkg/constants"
	"golang.org/x/text/cases"
)

var ErrMalformedName = errors.New("malformed source filename")

type Variant int

const (
	VariantPaper Variant = iota
	VariantSolutions
	VariantAnnotated
)

var variantName = map[Variant]string{
	VariantPaper:     "paper",
	VariantSolutions: "solutions",
	VariantAnnotated: "annotated",
}

func (v Variant) String() string {
	return variantName[v]
}

func (v Variant) Suffix() string {
	switch v {
	case VariantSolutions:
		return constants.TargetSolutionsSuffix
	case VariantAnnotated:
		return constants.TargetAnnotatedSuffix
	default:
		return ""
	}
}

// SourceName is what the sorter reads out of an unsorted filename such as
// "EE1_1.1_solutions.pdf".
type SourceName struct {
	Filename     string
	Level        string
	ModuleNumber string
	Variant      Variant
}

var folder = cases.Fold()

// Classify looks for the variant keywords anywhere in the name, ignoring case.
// "solutions" wins over "annotate".
func Classify(filename string) Variant {
	folded := folder.String(filename)
	switch {
	case strings.Contains(folded, constants.LayoutSolutionsKeyword):
		return VariantSolutions
	case strings.Contains(folded, constants.LayoutAnnotateKeyword):
		return VariantAnnotated
	default:
		return VariantPaper
	}
}

// ParseSourceName slices the level (bytes 0..3) and the module number
// (bytes 4..7, spaces trimmed, underscores removed) out of filename.
func ParseSourceName(filename string) (SourceName, error) {
	if len(filename) < constants.LayoutModuleNumEnd {
		return SourceName{}, fmt.Errorf("%w: %q is shorter than %d characters", ErrMalformedName, filename, constants.LayoutModuleNumEnd)
	}

	raw := filename[constants.LayoutModuleNumStart:constants.LayoutModuleNumEnd]
	num := strings.ReplaceAll(strings.TrimSpace(raw), "_", "")
	if num == "" {
		return SourceName{}, fmt.Errorf("%w: %q has no module number", ErrMalformedName, filename)
	}

	return SourceName{
		Filename:     filename,
		Level:        filename[:constants.LayoutLevelLen],
		ModuleNumber: num,
		Variant:      Classify(filename),
	}, nil
}

// TargetName is the normalized filename inside a module folder.
func TargetName(examYear string, v Variant) string {
	return examYear + v.Suffix() + constants.TargetExtension
}
