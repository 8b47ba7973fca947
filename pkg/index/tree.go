package index

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/eee-past-papers/papers/pkg/utils"
)

type Paper struct {
	Filename string
}

type Subject struct {
	Name   string
	Papers []Paper
}

type Year struct {
	Name     string
	Subjects []Subject
}

// Tree mirrors <year>/<subject>/<paper> with every level in name order.
type Tree struct {
	Years []Year
}

func (t Tree) PaperCount() int {
	count := 0
	for _, y := range t.Years {
		for _, s := range y.Subjects {
			count += len(s.Papers)
		}
	}
	return count
}

// Scan reads the archive rooted at fsys. Only top-level folders starting with
// yearPrefix are years; every entry of a subject folder is a paper.
func Scan(fsys fs.FS, yearPrefix string) (Tree, error) {
	tree := Tree{Years: make([]Year, 0)}

	dirs, err := utils.ListDirNames(fsys, ".")
	if err != nil {
		return tree, fmt.Errorf("listing archive root: %w", err)
	}

	for _, name := range dirs {
		if !strings.HasPrefix(name, yearPrefix) {
			continue
		}

		year, err := scanYear(fsys, name)
		if err != nil {
			return tree, err
		}
		tree.Years = append(tree.Years, year)
	}

	return tree, nil
}

func scanYear(fsys fs.FS, name string) (Year, error) {
	year := Year{Name: name, Subjects: make([]Subject, 0)}

	subjects, err := utils.ListDirNames(fsys, name)
	if err != nil {
		return year, fmt.Errorf("listing year %s: %w", name, err)
	}

	for _, subject := range subjects {
		papers, err := utils.ListEntryNames(fsys, path.Join(name, subject))
		if err != nil {
			return year, fmt.Errorf("listing subject %s/%s: %w", name, subject, err)
		}

		s := Subject{Name: subject, Papers: make([]Paper, 0, len(papers))}
		for _, p := range papers {
			s.Papers = append(s.Papers, Paper{Filename: p})
		}
		year.Subjects = append(year.Subjects, s)
	}

	return year, nil
}
