package parse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tripfolio/lodging-parser/constants"
)

// reDateLiteral recognizes month-name date literals like "Nov 30, 2025" or
// "December 3rd 2025". It is the single date shape the heuristics understand.
var reDateLiteral = regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?[ \t]+(\d{1,2})(?:st|nd|rd|th)?,?[ \t]+(\d{4})\b`)

var (
	reCheckInLabel  = regexp.MustCompile(`(?i)check[ \t-]?in\b[ \t]*:?`)
	reCheckOutLabel = regexp.MustCompile(`(?i)check[ \t-]?out\b[ \t]*:?`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// dateHit is a date literal found in the text, with its byte offset so
// document order survives sorting elsewhere.
type dateHit struct {
	t   time.Time
	pos int
}

func findDates(text string) []dateHit {
	ms := reDateLiteral.FindAllStringSubmatchIndex(text, -1)
	hits := make([]dateHit, 0, len(ms))
	for _, m := range ms {
		t, ok := literalToDate(text[m[2]:m[3]], text[m[4]:m[5]], text[m[6]:m[7]])
		if !ok {
			continue
		}
		hits = append(hits, dateHit{t: t, pos: m[0]})
	}
	return hits
}

func literalToDate(mon, day, year string) (time.Time, bool) {
	m, ok := months[strings.ToLower(mon)[:3]]
	if !ok {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// firstDateIn returns the first date literal in s.
func firstDateIn(s string) (time.Time, bool) {
	if hits := findDates(s); len(hits) > 0 {
		return hits[0].t, true
	}
	return time.Time{}, false
}

// dateAfterLabel extracts a date from the trailing text of a labeled line.
func dateAfterLabel(text string, label *regexp.Regexp) (time.Time, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return time.Time{}, false
	}
	tail := text[loc[1]:]
	if i := strings.IndexByte(tail, '\n'); i >= 0 {
		tail = tail[:i]
	}
	return firstDateIn(tail)
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func parseISO(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func datesOf(hits []dateHit) []time.Time {
	out := make([]time.Time, len(hits))
	for i, h := range hits {
		out[i] = h.t
	}
	return out
}

func exclude(dates []time.Time, drop time.Time) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if !d.Equal(drop) {
			out = append(out, d)
		}
	}
	return out
}

func uniqueSorted(dates []time.Time) []time.Time {
	out := append([]time.Time(nil), dates...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	dedup := out[:0]
	for _, d := range out {
		if len(dedup) == 0 || !dedup[len(dedup)-1].Equal(d) {
			dedup = append(dedup, d)
		}
	}
	return dedup
}

// pairStayDates picks the check-in/check-out pair from candidates: positive
// span of at most MaxStayNights, minimizing the span (closest plausible stay
// length). Ties go to the earliest pair.
func pairStayDates(cands []time.Time) (in, out time.Time, ok bool) {
	ds := uniqueSorted(cands)
	bestSpan := -1
	for i := 0; i < len(ds); i++ {
		for j := i + 1; j < len(ds); j++ {
			span := daysBetween(ds[i], ds[j])
			if span <= 0 || span > constants.MaxStayNights {
				continue
			}
			if bestSpan == -1 || span < bestSpan {
				bestSpan = span
				in, out, ok = ds[i], ds[j], true
			}
		}
	}
	return in, out, ok
}

// partnerAfter finds the closest candidate after the known check-in within
// the plausible stay window.
func partnerAfter(checkIn time.Time, cands []time.Time) (time.Time, bool) {
	var best time.Time
	bestSpan := -1
	for _, d := range uniqueSorted(cands) {
		span := daysBetween(checkIn, d)
		if span <= 0 || span > constants.MaxStayNights {
			continue
		}
		if bestSpan == -1 || span < bestSpan {
			bestSpan, best = span, d
		}
	}
	return best, bestSpan != -1
}

// partnerBefore is the mirror of partnerAfter for a known check-out.
func partnerBefore(checkOut time.Time, cands []time.Time) (time.Time, bool) {
	var best time.Time
	bestSpan := -1
	for _, d := range uniqueSorted(cands) {
		span := daysBetween(d, checkOut)
		if span <= 0 || span > constants.MaxStayNights {
			continue
		}
		if bestSpan == -1 || span < bestSpan {
			bestSpan, best = span, d
		}
	}
	return best, bestSpan != -1
}

// firstTwoInOrder returns the first two distinct dates in document order.
func firstTwoInOrder(hits []dateHit) (first, second time.Time, ok bool) {
	haveFirst := false
	for _, h := range hits {
		if !haveFirst {
			first, haveFirst = h.t, true
			continue
		}
		if !h.t.Equal(first) {
			return first, h.t, true
		}
	}
	return time.Time{}, time.Time{}, false
}

// inferCancelDeadline picks the latest date strictly before check-in,
// preferring one within CancelWindowDays of it.
func inferCancelDeadline(checkIn time.Time, cands []time.Time) (time.Time, bool) {
	var latest, near time.Time
	var latestOK, nearOK bool
	for _, d := range cands {
		if !d.Before(checkIn) {
			continue
		}
		if !latestOK || d.After(latest) {
			latest, latestOK = d, true
		}
		if daysBetween(d, checkIn) <= constants.CancelWindowDays && (!nearOK || d.After(near)) {
			near, nearOK = d, true
		}
	}
	if nearOK {
		return near, true
	}
	return latest, latestOK
}
