package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// openDocumentMarker is the Lotus Domino query suffix that marks a
// document-opening link on the proceedings site. Both symposium and
// talk anchors carry it.
const openDocumentMarker = "OpenDocument"

// meetingSuffixLen is the number of trailing characters of the meeting
// URL that symposium hrefs are required to end with. This is the
// site's idiosyncratic way of scoping anchors to the current meeting:
// the last 8 characters of the meeting URL are the tail of its
// ParentUNID, which the site repeats at the end of every symposium
// href under that meeting. It is fragile by nature — a site-side UNID
// format change breaks it — but it is what the page structure offers.
const meetingSuffixLen = 8

// Anchor is a display-text/href pair taken from an <a> element, in
// document order.
type Anchor struct {
	// Text is the anchor's visible text content, whitespace-trimmed.
	Text string

	// Href is the raw href attribute, typically root-relative.
	Href string
}

// SymposiumAnchors returns the anchors on a meeting page that point at
// symposium pages: hrefs ending with the trailing meetingSuffixLen
// characters of pageURL itself and containing the OpenDocument marker.
// An empty result is a valid outcome, not an error.
func SymposiumAnchors(markup, pageURL string) ([]Anchor, error) {
	suffix := pageURL
	if len(pageURL) > meetingSuffixLen {
		suffix = pageURL[len(pageURL)-meetingSuffixLen:]
	}

	return selectAnchors(markup, func(href string) bool {
		return strings.HasSuffix(href, suffix) && strings.Contains(href, openDocumentMarker)
	})
}

// TalkAnchors returns the anchors on a symposium page that point at
// talk detail pages: hrefs ending with the OpenDocument marker, with
// no suffix constraint. A symposium with zero talks yields an empty
// result.
func TalkAnchors(markup string) ([]Anchor, error) {
	return selectAnchors(markup, func(href string) bool {
		return strings.HasSuffix(href, openDocumentMarker)
	})
}

// selectAnchors parses markup and returns every <a> whose href
// satisfies match, preserving document order.
func selectAnchors(markup string, match func(href string) bool) ([]Anchor, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	anchors := make([]Anchor, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" && match(href) {
				anchors = append(anchors, Anchor{
					Text: strings.TrimSpace(textContent(n)),
					Href: href,
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return anchors, nil
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
