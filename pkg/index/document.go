package index

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a piece of the generated page. The page is assembled as a tree of
// nodes and turned into text once, at the end.
type Node interface {
	Render(w io.StringWriter) error
}

type Attr struct {
	Key, Val string
}

type Element struct {
	Tag      atom.Atom
	Attrs    []Attr
	Children []Node
}

// Text is escaped on render.
type Text string

// Raw is written as is. Used for the fixed page template.
type Raw string

// Fragment renders its nodes one after the other, without a wrapping tag.
type Fragment []Node

var voidElements = map[atom.Atom]bool{
	atom.Br:    true,
	atom.Input: true,
	atom.Link:  true,
	atom.Meta:  true,
}

func El(tag atom.Atom, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

func (e *Element) Render(w io.StringWriter) error {
	if _, err := w.WriteString("<" + e.Tag.String()); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		if _, err := w.WriteString(" " + a.Key + "='" + html.EscapeString(a.Val) + "'"); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}

	if voidElements[e.Tag] {
		return nil
	}

	for _, child := range e.Children {
		if err := child.Render(w); err != nil {
			return err
		}
	}

	_, err := w.WriteString("</" + e.Tag.String() + ">")
	return err
}

func (t Text) Render(w io.StringWriter) error {
	_, err := w.WriteString(html.EscapeString(string(t)))
	return err
}

func (r Raw) Render(w io.StringWriter) error {
	_, err := w.WriteString(string(r))
	return err
}

func (f Fragment) Render(w io.StringWriter) error {
	for _, n := range f {
		if err := n.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders n into a string. Writing into a strings.Builder never fails.
func RenderString(n Node) string {
	var sb strings.Builder
	_ = n.Render(&sb)
	return sb.String()
}
