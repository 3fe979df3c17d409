package htmlutil

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matcher reports whether a node satisfies some condition.
type Matcher func(n *html.Node) bool

// WithTag matches element nodes of the given tag.
func WithTag(a atom.Atom) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

// WithIDEqual matches element nodes with the given id attribute.
func WithIDEqual(id string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	}
}

// WithClass matches element nodes whose class attribute contains the given class.
func WithClass(class string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, "class")
		return ok && slices.Contains(strings.Fields(v), class)
	}
}

// WithAttribute matches element nodes having the given attribute, whatever its value.
func WithAttribute(key string) Matcher {
	return func(n *html.Node) bool {
		_, ok := Attr(n, key)
		return ok
	}
}

// All combines matchers so that a node has to satisfy each of them.
func All(ms ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Attr returns the value of an element node's attribute.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// FindOne returns the first descendant of n, n included, in depth-first order
// that satisfies m.
func FindOne(n *html.Node, m Matcher) (*html.Node, bool) {
	if m(n) {
		return n, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found, ok := FindOne(c, m); ok {
			return found, true
		}
	}
	return nil, false
}

// FindAll returns every descendant of n, n included, that satisfies m.
func FindAll(n *html.Node, m Matcher) []*html.Node {
	var nodes []*html.Node
	if m(n) {
		nodes = append(nodes, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, FindAll(c, m)...)
	}
	return nodes
}

// Text returns the concatenated text content of n with surrounding whitespace trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// Link describes an anchor found in a markup fragment.
type Link struct {
	Href   string
	Text   string
	Target string
	Rel    string
}

// External reports whether the link points to an absolute http or https URL.
func (l Link) External() bool {
	u, err := url.Parse(l.Href)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// OpensNewContext reports whether the link opens in a new browsing context.
func (l Link) OpensNewContext() bool {
	return l.Target == "_blank"
}

// Parse parses a markup fragment as if it were the content of a <body>.
func Parse(r io.Reader) (*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}

	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("could not parse html fragment: %w", err)
	}

	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// Links returns every anchor with an href attribute found in n, in document order.
func Links(n *html.Node) []Link {
	var links []Link
	for _, a := range FindAll(n, All(WithTag(atom.A), WithAttribute("href"))) {
		href, _ := Attr(a, "href")
		target, _ := Attr(a, "target")
		rel, _ := Attr(a, "rel")
		links = append(links, Link{
			Href:   href,
			Text:   Text(a),
			Target: target,
			Rel:    rel,
		})
	}
	return links
}
