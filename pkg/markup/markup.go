// Package markup provides small helpers for assembling widget markup:
// HTML escaping and class-list construction. Widgets build their output with
// ordinary format strings; these helpers keep the escaping and conditional
// class conventions uniform across the widget set.
package markup

import (
	"html"
	"strings"
)

// Escape returns s with HTML special characters replaced by entities, safe
// for use both as element text and inside double-quoted attribute values.
func Escape(s string) string {
	return html.EscapeString(s)
}

// ClassList joins the non-empty tokens with single spaces, producing the
// value of a class attribute. Conditional classes are passed as "" when
// inactive, so callers can write the full token list unconditionally:
//
//	markup.ClassList("checkbox", stretch)        // "checkbox" or "checkbox stretch"
//	markup.ClassList("checkbox-outer", checked)  // trailing token only when set
func ClassList(tokens ...string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// BoolClass returns token when on is true and "" otherwise. It pairs with
// ClassList for decoration classes that mirror a boolean state.
func BoolClass(on bool, token string) string {
	if on {
		return token
	}
	return ""
}
