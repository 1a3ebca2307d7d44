package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Fixed positions of the author and abstract cells on a talk detail
// page, indexed into the sequence of table cells that contain no link.
// Determined empirically from the site's fixed layout; pages rendered
// from other templates fail the bounds check below.
const (
	authorsCellIndex  = 10
	abstractCellIndex = 14
)

// Detail extracts the authors and abstract text from a talk detail
// page. It collects every <td> cell that has no <a> descendant (this
// excludes the navigation and header cells, which are all linked) and
// indexes into that filtered sequence at the two fixed positions.
//
// A page with fewer cells than expected returns an error; callers must
// treat this as a per-talk failure, not as fatal to the run.
func Detail(markup string) (authors, abstract string, err error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", "", err
	}

	cells := plainCells(doc)
	if len(cells) <= abstractCellIndex {
		return "", "", fmt.Errorf("detail layout: %d link-free cells, need at least %d",
			len(cells), abstractCellIndex+1)
	}

	authors = strings.TrimSpace(textContent(cells[authorsCellIndex]))
	abstract = strings.TrimSpace(textContent(cells[abstractCellIndex]))
	return authors, abstract, nil
}

// plainCells returns every <td> element under n that contains no
// anchor, in document order.
func plainCells(n *html.Node) []*html.Node {
	var cells []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" && !containsAnchor(n) {
			cells = append(cells, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return cells
}

// containsAnchor reports whether any descendant of n is an <a>.
func containsAnchor(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			return true
		}
		if containsAnchor(c) {
			return true
		}
	}
	return false
}
