// Package fragment builds self-contained HTML fragments for inclusion in
// rendered blog posts.
//
// Every constructor is a pure function: it maps one content unit plus a set
// of recognized style options to a single markup string. There is no shared
// state and no I/O, identical inputs always produce identical bytes and all
// constructors are safe for concurrent use.
//
// Plain string arguments are always escaped by the serializer. Content that
// is allowed to carry markup (tab panes, accordion bodies, column cells) is
// typed as Markup and must be a single well-formed element, typically the
// result of another constructor.
//
// Option values outside their recognized sets fail fast with
// InvalidOptionError. Constructors never fall back to a different style
// silently.
package fragment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Markup is an already rendered fragment. It is embedded into enclosing
// fragments without escaping, so it must never be built from untrusted
// input directly - use the constructors or Text.
type Markup string

// String returns the fragment as a plain string.
func (m Markup) String() string {
	return string(m)
}

// Text wraps plain text in an escaped paragraph so it can be used where a
// Markup body is expected.
func Text(s string) Markup {
	p := etree.NewElement("p")
	p.SetText(s)
	m, err := render(p)
	if err != nil {
		// string serialization cannot fail
		panic(err)
	}
	return m
}

// render serializes a built element. Fragments are serialized without
// indentation and with explicit end tags so that identical inputs always
// produce identical bytes and empty containers stay valid HTML.
func render(root *etree.Element) (Markup, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root)
	doc.WriteSettings.CanonicalEndTags = true
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return Markup(s), nil
}

// graft parses already rendered markup and attaches its root element under
// parent. The field name is used for error reporting only.
func graft(parent *etree.Element, field string, m Markup) error {
	body := strings.TrimSpace(string(m))
	if body == "" {
		return &MissingFieldError{Field: field}
	}
	inner := etree.NewDocument()
	if err := inner.ReadFromString(body); err != nil {
		return &MalformedInputError{Field: field, Detail: "not a well-formed fragment", Err: err}
	}
	root := inner.Root()
	if root == nil {
		return &MalformedInputError{Field: field, Detail: "fragment has no root element"}
	}
	parent.AddChild(root)
	return nil
}

// colorPattern accepts hex colors and bare CSS color keywords. Anything
// fancier (rgb(), var()) is rejected - fragments are meant to be themed
// through classes, inline colors are an escape hatch.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

func validColor(option, value string) error {
	if !colorPattern.MatchString(value) {
		return &InvalidOptionError{Option: option, Value: value, Allowed: "hex color or CSS color keyword"}
	}
	return nil
}

// joinClasses builds a class attribute value skipping empty entries.
func joinClasses(classes ...string) string {
	kept := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

// cssDecls joins CSS declarations into a single style attribute value.
func cssDecls(decls ...string) string {
	return strings.Join(decls, " ")
}

func percent(v float64) string {
	return fmt.Sprintf("%.4g%%", v)
}
