package index

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/eee-past-papers/papers/pkg/constants"
	"github.com/eee-past-papers/papers/pkg/writer"
	"golang.org/x/net/html/atom"
)

type IndexGenerator struct {
	outPath string
	bucket  *url.URL
	page    Page
}

func NewIndexGenerator(absOutPath string, bucketUrl string, page Page) (*IndexGenerator, error) {
	bucket, err := url.Parse(bucketUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid bucket url %q: %w", bucketUrl, err)
	}
	if bucket.Scheme == "" || bucket.Host == "" {
		return nil, fmt.Errorf("bucket url %q must be absolute", bucketUrl)
	}

	return &IndexGenerator{outPath: absOutPath, bucket: bucket, page: page}, nil
}

// DisplayName is the link text of a paper: its filename without a trailing ".pdf".
func DisplayName(filename string) string {
	return strings.TrimSuffix(filename, constants.TargetExtension)
}

// PaperHref points at the bucket mirror of <year>/<subject>/<paper>.
func (gen *IndexGenerator) PaperHref(year, subject, paper string) string {
	return gen.bucket.JoinPath(url.PathEscape(year), url.PathEscape(subject), url.PathEscape(paper)).String()
}

// Body nests one collapsible block per year, one per subject inside it and a
// link per paper.
func (gen *IndexGenerator) Body(tree Tree) Node {
	body := make(Fragment, 0, len(tree.Years))

	for _, y := range tree.Years {
		year := El(atom.Details, []Attr{{"class", "year"}}, El(atom.Summary, nil, Text(y.Name)))

		for _, s := range y.Subjects {
			links := El(atom.Div, []Attr{{"style", "line-height: 80%;margin-bottom: 10px;"}})
			for _, p := range s.Papers {
				links.Append(
					El(atom.Br, nil),
					El(atom.A, []Attr{{"class", "paper"}, {"href", gen.PaperHref(y.Name, s.Name, p.Filename)}}, Text(DisplayName(p.Filename))),
				)
			}

			year.Append(El(atom.Details, []Attr{{"class", "subject"}}, El(atom.Summary, nil, Text(s.Name)), links))
		}

		body = append(body, year)
	}

	return body
}

// Render produces the complete page. The same tree always gives the same bytes.
func (gen *IndexGenerator) Render(tree Tree) string {
	return RenderString(Fragment{gen.page.Header(), gen.Body(tree), gen.page.Footer()})
}

// Write replaces the output file with content.
func (gen *IndexGenerator) Write(content string) error {
	w, err := writer.NewWriter[[]byte](filepath.Dir(gen.outPath))
	if err != nil {
		return fmt.Errorf("error while creating writer in IndexGenerator, error: %w", err)
	}

	if err := w.Write(filepath.Base(gen.outPath), []byte(content)); err != nil {
		return fmt.Errorf("error while performing write in IndexGenerator, error: %w", err)
	}

	slog.Info("[indexer] Successfully written", "path", gen.outPath, "bytes", len(content))
	return nil
}

// Previous reads the page currently at the output path, if any.
func (gen *IndexGenerator) Previous() (Stats, bool, error) {
	w := writer.Writer[[]byte]{DirPath: filepath.Dir(gen.outPath)}

	exists, err := w.Exists(filepath.Base(gen.outPath))
	if err != nil || !exists {
		return Stats{}, false, err
	}

	data, err := w.Read(filepath.Base(gen.outPath))
	if err != nil {
		return Stats{}, false, err
	}

	stats, err := InspectHtml(data)
	return stats, err == nil, err
}
