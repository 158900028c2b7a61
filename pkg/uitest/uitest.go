// Package uitest provides test helpers for asserting on widget markup.
//
// Render evaluates a widget and parses the result, and the Markup methods
// query it with CSS selectors, so tests assert on structure (classes,
// attributes, labels) instead of brittle full-string comparison:
//
//	m := uitest.Render(t, &cb)
//	if !m.HasClass("div.checkbox-outer", "checked") {
//	    t.Error("outer element missing checked class")
//	}
package uitest

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/nextcore/quark/pkg/core"
)

// Markup is a parsed markup fragment under test.
type Markup struct {
	t   *testing.T
	doc *goquery.Document
}

// Render evaluates the widget and parses its markup.
func Render(t *testing.T, w core.Widget) *Markup {
	t.Helper()
	return Parse(t, w.Eval())
}

// Parse parses a markup fragment.
func Parse(t *testing.T, fragment string) *Markup {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("failed to parse markup %q: %v", fragment, err)
	}
	return &Markup{t: t, doc: doc}
}

// Find returns the selection matching the CSS selector.
func (m *Markup) Find(selector string) *goquery.Selection {
	return m.doc.Find(selector)
}

// Count returns the number of elements matching the selector.
func (m *Markup) Count(selector string) int {
	return m.doc.Find(selector).Length()
}

// RequireOne asserts exactly one element matches the selector and returns it.
func (m *Markup) RequireOne(selector string) *goquery.Selection {
	m.t.Helper()
	sel := m.doc.Find(selector)
	if sel.Length() != 1 {
		m.t.Fatalf("selector %q matched %d elements, want 1", selector, sel.Length())
	}
	return sel
}

// HasClass reports whether the first element matching the selector carries
// the class token. It fails the test if nothing matches.
func (m *Markup) HasClass(selector, class string) bool {
	m.t.Helper()
	sel := m.doc.Find(selector)
	if sel.Length() == 0 {
		m.t.Fatalf("selector %q matched nothing", selector)
	}
	return sel.First().HasClass(class)
}

// Text returns the text content of the first element matching the selector.
func (m *Markup) Text(selector string) string {
	m.t.Helper()
	return m.doc.Find(selector).First().Text()
}

// Attr returns the attribute value on the first element matching the
// selector, failing the test if the element or attribute is absent.
func (m *Markup) Attr(selector, name string) string {
	m.t.Helper()
	sel := m.doc.Find(selector)
	if sel.Length() == 0 {
		m.t.Fatalf("selector %q matched nothing", selector)
	}
	v, ok := sel.First().Attr(name)
	if !ok {
		m.t.Fatalf("element %q has no attribute %q", selector, name)
	}
	return v
}
