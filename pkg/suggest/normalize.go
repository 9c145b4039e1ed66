// Package suggest offers fuzzy filename matching, used to build
// did-you-mean hints when an input file cannot be found.
package suggest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a filename for fuzzy comparison. The result is
// lowercase with accents stripped and whitespace collapsed. Separator
// characters compare as spaces so "net_config" and "net-config" align.
func Normalize(name string) string {
	s := strings.ToLower(name)

	// Remove accents
	s = removeAccents(s)

	// Separators become word boundaries
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")

	// Remove other punctuation
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Collapse whitespace
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
