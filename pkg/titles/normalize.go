// Package titles normalizes show titles and scores how well a user's query
// matches them.
package titles

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanRegex matches II-IX after a space. A bare "I" or "X" and a leading
// numeral are left alone ("I Love Lucy", "SPY x FAMILY", "VII Days").
var romanRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

// yearSuffix matches a trailing disambiguation year: "Doctor Who (2005)".
var yearSuffix = regexp.MustCompile(`\s*\((19|20)\d{2}\)\s*$`)

var articles = []string{"the ", "a ", "an "}

// Normalize lowercases a title and strips what varies between sources:
// accents, punctuation, leading articles, a trailing "(year)" and Roman
// numeral sequel markers.
func Normalize(title string) string {
	s := yearSuffix.ReplaceAllString(title, "")
	s = strings.ToLower(s)
	s = romanRegex.ReplaceAllStringFunc(s, func(m string) string {
		if arabic, ok := romanToArabic[strings.TrimSpace(m)]; ok {
			return " " + arabic
		}
		return m
	})
	s = stripAccents(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", "’", "", ".", " ").Replace(s)

	// "Star Trek: The Next Generation" loses the article after the colon too.
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = stripArticle(p)
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func stripArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, a := range articles {
		if strings.HasPrefix(s, a) {
			return strings.TrimPrefix(s, a)
		}
	}
	return s
}
