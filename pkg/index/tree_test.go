package index

import (
	"testing"
	"testing/fstest"
)

func archive() fstest.MapFS {
	return fstest.MapFS{
		"EE18/Control/paper2.pdf":     {Data: []byte("x")},
		"EE18/Control/paper1.pdf":     {Data: []byte("x")},
		"EE18/Analysis/2017_sols.pdf": {Data: []byte("x")},
		"EE18/Analysis/notes.doc":     {Data: []byte("x")},
		"EE17/Comms/2016.pdf":         {Data: []byte("x")},
		"EE17/stray.pdf":              {Data: []byte("x")},
		"EE1/E1.1/2018.pdf":           {Data: []byte("x")},
		"2018/EE1_1.1.pdf":            {Data: []byte("x")},
		"EEfile.txt":                  {Data: []byte("x")},
		"index.html":                  {Data: []byte("x")},
		"EE16/Maths/Old papers/a.pdf": {Data: []byte("x")},
	}
}

func TestScan_OrderAndShape(t *testing.T) {
	tree, err := Scan(archive(), "EE")
	if err != nil {
		t.Fatal(err)
	}

	var years []string
	for _, y := range tree.Years {
		years = append(years, y.Name)
	}
	want := []string{"EE1", "EE16", "EE17", "EE18"}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years = %v, want %v", years, want)
		}
	}

	ee18 := tree.Years[3]
	if len(ee18.Subjects) != 2 || ee18.Subjects[0].Name != "Analysis" || ee18.Subjects[1].Name != "Control" {
		t.Fatalf("EE18 subjects = %+v", ee18.Subjects)
	}
	control := ee18.Subjects[1]
	if len(control.Papers) != 2 || control.Papers[0].Filename != "paper1.pdf" || control.Papers[1].Filename != "paper2.pdf" {
		t.Errorf("Control papers = %+v", control.Papers)
	}

	if len(tree.Years[2].Subjects) != 1 {
		t.Errorf("files directly under a year are not subjects: %+v", tree.Years[2].Subjects)
	}

	maths := tree.Years[1].Subjects[0]
	if len(maths.Papers) != 1 || maths.Papers[0].Filename != "Old papers" {
		t.Errorf("folders inside a subject are listed as papers: %+v", maths.Papers)
	}
}

func TestScan_Stats(t *testing.T) {
	tree, err := Scan(archive(), "EE")
	if err != nil {
		t.Fatal(err)
	}
	got := tree.Stats()
	want := Stats{Years: 4, Subjects: 5, Papers: 7}
	if got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
	if tree.PaperCount() != 7 {
		t.Errorf("PaperCount = %d", tree.PaperCount())
	}
}

func TestScan_EmptyArchive(t *testing.T) {
	tree, err := Scan(fstest.MapFS{"2018/EE1_1.1.pdf": {Data: []byte("x")}}, "EE")
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Years) != 0 {
		t.Errorf("Years = %+v", tree.Years)
	}
}
