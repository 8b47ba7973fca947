package router

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"

	"github.com/eee-past-papers/papers/pkg/utils"
)

var ErrModuleNotFound = errors.New("module not found")

// ModuleTable maps a level prefix (EE1..EE4) to the sorted names of the
// module folders directly under it.
type ModuleTable map[string][]string

// BuildModuleTable lists the module folders of every level in fsys, which is
// rooted at the archive root. A missing level folder gives an empty list.
func BuildModuleTable(fsys fs.FS, levels []string) (ModuleTable, error) {
	table := make(ModuleTable, len(levels))

	for _, level := range levels {
		names, err := utils.ListDirNames(fsys, level)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Warn("[modules] level folder not found, no module can match it", "level", level)
				table[level] = []string{}
				continue
			}
			return nil, err
		}

		slog.Debug("[modules] level scanned", "level", level, "modules", len(names))
		table[level] = names
	}

	return table, nil
}

// Matches returns every module of level whose name starts with moduleNumber,
// either as is or once its leading letters are dropped ("E1.1" for "1.1").
func (t ModuleTable) Matches(level, moduleNumber string) []string {
	out := make([]string, 0)
	if moduleNumber == "" {
		return out
	}

	for _, name := range t[level] {
		code := strings.TrimLeftFunc(name, unicode.IsLetter)
		if strings.HasPrefix(name, moduleNumber) || strings.HasPrefix(code, moduleNumber) {
			out = append(out, name)
		}
	}

	return out
}

// ResolveModule returns the first matching module folder name of level.
func ResolveModule(t ModuleTable, level, moduleNumber string) (string, bool) {
	matches := t.Matches(level, moduleNumber)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0], true
}
