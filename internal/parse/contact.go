package parse

import (
	"regexp"
	"strings"
)

var (
	reRooms        = regexp.MustCompile(`(?i)\b(\d+)[ \t]*rooms?\b`)
	reFreeCancel   = regexp.MustCompile(`(?i)(?:free cancellation|cancel(?:lation)? for free)[ \t]+until[ \t]*:?[ \t]*([^\n]+)`)
	reAddressLabel = regexp.MustCompile(`(?i)address\s*:[ \t]*`)
	reSectionLabel = regexp.MustCompile(`(?i)\b(?:guest(?: name)?|check[ \t-]?in|check[ \t-]?out|total)\b[ \t]*:`)
	rePhone        = regexp.MustCompile(`(?i)phone\s*:[ \t]*(\+?[\d(][\d \t()+-]{5,})`)
)

func roomCount(text string) string {
	if m := reRooms.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// freeCancel extracts the free-cancellation deadline. A date literal in the
// label's trailing text becomes ISO; otherwise the raw trailing text is kept
// verbatim.
func freeCancel(text string) string {
	m := reFreeCancel.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	tail := strings.TrimSpace(m[1])
	if t, ok := firstDateIn(tail); ok {
		return isoDate(t)
	}
	return strings.TrimRight(tail, " .")
}

func mentionsBreakfast(text string) bool {
	return strings.Contains(strings.ToLower(text), "breakfast")
}

// address prefers an explicit label, capturing up to the next recognized
// section label or end of text. The fallback takes the longest non-empty
// line containing a comma: addresses tend to be the most comma-and-token
// dense single line.
func address(text string) string {
	if loc := reAddressLabel.FindStringIndex(text); loc != nil {
		tail := text[loc[1]:]
		if next := reSectionLabel.FindStringIndex(tail); next != nil {
			tail = tail[:next[0]]
		}
		if a := strings.Join(strings.Fields(tail), " "); a != "" {
			return strings.TrimRight(a, " ,")
		}
	}
	best := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, ",") && len(line) > len(best) {
			best = line
		}
	}
	return best
}

func phoneNumber(text string) string {
	if m := rePhone.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(strings.TrimSpace(m[1]), " -")
	}
	return ""
}
