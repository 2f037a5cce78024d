package parse

import (
	"regexp"
	"strings"
)

var (
	reHotelLabel     = regexp.MustCompile(`(?i)(?:hotel name|property)\s*:[ \t]*([^\n]+)`)
	reHotelCandidate = regexp.MustCompile(`(?i)[a-z0-9][a-z0-9 '&.-]*hotel\b`)
)

// hotelName prefers an explicit label. Otherwise every substring ending in
// the word "hotel" is a candidate: ones mentioning a known vendor win, else
// the shortest (shorter matches tend to exclude trailing sentence noise).
func hotelName(text string) string {
	if m := reHotelLabel.FindStringSubmatch(text); m != nil {
		if name := strings.TrimRight(strings.TrimSpace(m[1]), " .,;"); name != "" {
			return name
		}
	}
	best := ""
	for _, c := range reHotelCandidate.FindAllString(text, -1) {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if containsVendorFragment(c) {
			return c
		}
		if best == "" || len(c) < len(best) {
			best = c
		}
	}
	return best
}
