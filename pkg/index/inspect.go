package index

import (
	"github.com/eee-past-papers/papers/pkg/utils"
)

type Stats struct {
	Years    int
	Subjects int
	Papers   int
}

func (t Tree) Stats() Stats {
	s := Stats{Years: len(t.Years), Papers: t.PaperCount()}
	for _, y := range t.Years {
		s.Subjects += len(y.Subjects)
	}
	return s
}

// InspectHtml counts the year, subject and paper blocks of a generated page.
func InspectHtml(data []byte) (Stats, error) {
	doc, err := utils.LoadLocalHtml(data)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Years:    doc.Find("details.year").Length(),
		Subjects: doc.Find("details.year > details").Length(),
		Papers:   doc.Find("details.year a[href]").Length(),
	}, nil
}
