package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/eee-past-papers/papers/pkg/constants"
)

const testBucket = "https://storage.cloud.google.com/eee-past-papers"

func newGenerator(t *testing.T, out string) *IndexGenerator {
	t.Helper()
	gen, err := NewIndexGenerator(out, testBucket, DefaultPage())
	if err != nil {
		t.Fatal(err)
	}
	return gen
}

func controlTree() Tree {
	return Tree{Years: []Year{{
		Name: "EE18",
		Subjects: []Subject{{
			Name:   "Control",
			Papers: []Paper{{Filename: "paper1.pdf"}, {Filename: "paper2.pdf"}},
		}},
	}}}
}

func parse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRender_YearSubjectPaperNesting(t *testing.T) {
	gen := newGenerator(t, filepath.Join(t.TempDir(), "index.html"))
	doc := parse(t, gen.Render(controlTree()))

	years := doc.Find("details.year")
	if years.Length() != 1 {
		t.Fatalf("year blocks = %d, want 1", years.Length())
	}
	if got := years.ChildrenFiltered("summary").Text(); got != "EE18" {
		t.Errorf("year summary = %q", got)
	}

	subjects := years.ChildrenFiltered("details.subject")
	if subjects.Length() != 1 {
		t.Fatalf("subject blocks = %d, want 1", subjects.Length())
	}
	if got := subjects.ChildrenFiltered("summary").Text(); got != "Control" {
		t.Errorf("subject summary = %q", got)
	}

	links := subjects.Find("a.paper")
	if links.Length() != 2 {
		t.Fatalf("links = %d, want 2", links.Length())
	}
	for i, name := range []string{"paper1", "paper2"} {
		link := links.Eq(i)
		if link.Text() != name {
			t.Errorf("link %d text = %q, want %q", i, link.Text(), name)
		}
		href, _ := link.Attr("href")
		if want := testBucket + "/EE18/Control/" + name + ".pdf"; href != want {
			t.Errorf("link %d href = %q, want %q", i, href, want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	gen := newGenerator(t, filepath.Join(t.TempDir(), "index.html"))
	tree, err := Scan(archive(), "EE")
	if err != nil {
		t.Fatal(err)
	}
	first := gen.Render(tree)
	again, _ := Scan(archive(), "EE")
	if second := gen.Render(again); first != second {
		t.Error("two renders of the same tree differ")
	}
}

func TestRender_TemplateParts(t *testing.T) {
	gen := newGenerator(t, filepath.Join(t.TempDir(), "index.html"))
	page := gen.Render(Tree{})

	doc := parse(t, page)
	if got := doc.Find("title").Text(); got != constants.WebPageTitle {
		t.Errorf("title = %q", got)
	}
	if v, _ := doc.Find("meta[name=description]").Attr("content"); v != constants.WebPageDescription {
		t.Errorf("description = %q", v)
	}
	if doc.Find("input#search").Length() != 1 {
		t.Error("search box missing")
	}
	for _, want := range []string{"function searchDetails()", "var hostname = 'xav.ai';", "gtag('config', 'UA-96943011-1');"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if doc.Find("details").Length() != 0 {
		t.Error("empty tree should produce no blocks")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"paper1.pdf":    "paper1",
		"2018_sols.pdf": "2018_sols",
		"notes.doc":     "notes.doc",
		"a.pdf.pdf":     "a.pdf",
		"scan.PDF":      "scan.PDF",
		"Old papers":    "Old papers",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPaperHref_EscapesSegments(t *testing.T) {
	gen := newGenerator(t, "index.html")
	got := gen.PaperHref("EE18", "Signals & Systems", "2017 #1.pdf")
	want := testBucket + "/EE18/Signals%20&%20Systems/2017%20%231.pdf"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewIndexGenerator_RejectsRelativeBucket(t *testing.T) {
	if _, err := NewIndexGenerator("index.html", "eee-past-papers", DefaultPage()); err == nil {
		t.Error("expected error for a bucket url without scheme and host")
	}
}

func TestWrite_OverwritesAndPrevious(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site", "index.html")
	gen := newGenerator(t, out)

	if _, found, err := gen.Previous(); err != nil || found {
		t.Fatalf("Previous before first write: found=%v err=%v", found, err)
	}

	if err := gen.Write("stale content that is much longer than the next one"); err != nil {
		t.Fatal(err)
	}

	page := gen.Render(controlTree())
	if err := gen.Write(page); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != page {
		t.Error("output file is not exactly the rendered page")
	}

	stats, found, err := gen.Previous()
	if err != nil || !found {
		t.Fatalf("Previous: found=%v err=%v", found, err)
	}
	if want := controlTree().Stats(); stats != want {
		t.Errorf("Previous stats = %+v, want %+v", stats, want)
	}
}
