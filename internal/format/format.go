// Package format turns raw participant identifiers into display text.
package format

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

var nameSeparators = strings.NewReplacer("_", " ", ".", " ")

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// DisplayName returns the human-readable name for a participant.
//
// Objects prefer their name verbatim, then their email formatted as a plain
// identifier, then their raw JSON text.
func DisplayName(p model.Participant) string {
	if p.IsZero() {
		return ""
	}
	if p.Object {
		if p.Name != "" {
			return p.Name
		}
		if p.Email != "" {
			return DisplayNameString(p.Email)
		}
		return p.String()
	}
	if p.Raw != "" {
		return p.Raw
	}
	return DisplayNameString(p.Text)
}

// DisplayNameString formats a plain identifier. For an email the local part
// is used; "_" and "." become spaces and every space-separated word gets its
// first character upper-cased.
func DisplayNameString(s string) string {
	if s == "" {
		return ""
	}
	base := s
	if at := strings.Index(s, "@"); at > 0 {
		base = s[:at]
	}
	base = nameSeparators.Replace(base)

	words := strings.Split(base, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// Initials returns one or two upper-cased letters for a display name.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return toUpper(firstChar(parts[0]))
	default:
		return toUpper(firstChar(parts[0]) + firstChar(parts[1]))
	}
}

// EscapeHTML neutralizes s for interpolation into markup. Replacement is a
// single pass so entities are never escaped twice.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func capitalize(w string) string {
	first := firstChar(w)
	if first == "" {
		return w
	}
	return toUpper(first) + w[len(first):]
}

// A Caser holds state, so each call gets its own.
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
