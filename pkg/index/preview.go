package index

import (
	"github.com/disiqueira/gotree/v3"
)

// Preview draws the scanned tree the way the page will nest it, with the
// link text of each paper.
func Preview(t Tree, rootLabel string) string {
	root := gotree.New(rootLabel)
	for _, y := range t.Years {
		year := root.Add(y.Name)
		for _, s := range y.Subjects {
			subject := year.Add(s.Name)
			for _, p := range s.Papers {
				subject.Add(DisplayName(p.Filename))
			}
		}
	}
	return root.Print()
}
