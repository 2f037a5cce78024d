package parse

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reGuestLabel    = regexp.MustCompile(`(?i)(?:guest name|guest|reservation for)\b\s*:?[ \t]*((?:[A-Za-z.'()-]+[ \t]?){1,4})`)
	reThanksGuest   = regexp.MustCompile(`(?i)thanks,?[ \t]+([A-Za-z]+[ \t]+[A-Za-z]+)`)
	reEmailGuest    = regexp.MustCompile(`([A-Za-z]+[ \t]+[A-Za-z]+)[ \t]*<[^<>@\s]+@[^<>\s]+>`)
	reParenthetical = regexp.MustCompile(`\([^)]*\)`)
)

// Candidates carrying boilerplate from the template are not names.
var guestDisclaimers = []string{"max capacity", "see confirmation online"}

// guestName tries, in order: an explicit guest/reservation label, a
// "Thanks, First Last" greeting, and a "First Last <email>" pattern. The
// winning candidate is title-cased regardless of source capitalization.
func guestName(text string) string {
	for _, re := range []*regexp.Regexp{reGuestLabel, reThanksGuest, reEmailGuest} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cand := m[1]
		if hasDisclaimer(cand) {
			continue
		}
		cand = reParenthetical.ReplaceAllString(cand, " ")
		cand = strings.Join(strings.Fields(cand), " ")
		cand = strings.Trim(cand, ".,'-")
		if cand == "" {
			continue
		}
		return titleCase(cand)
	}
	return ""
}

func hasDisclaimer(s string) bool {
	ls := strings.ToLower(s)
	for _, d := range guestDisclaimers {
		if strings.Contains(ls, d) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of every word and lowercases the rest.
func titleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
