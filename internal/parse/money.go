package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tripfolio/lodging-parser/constants"
)

var (
	reAmount      = regexp.MustCompile(`\$?[ \t]?(\d{1,3}(?:,\d{3})+|\d+)(\.\d{2})?`)
	reCostKeyword = regexp.MustCompile(`(?i)total|amount paid|price`)
)

const (
	// costWindow is how far past a cost keyword an amount still counts as
	// "near" it.
	costWindow = 60

	// highValueFloor separates incidental small integers from amounts big
	// enough to be a booking total even without a cents component.
	highValueFloor = 50
)

type amount struct {
	value float64
	cents bool // has a non-zero cents component
}

func amountsIn(s string) []amount {
	var out []amount
	for _, m := range reAmount.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "")+m[2], 64)
		if err != nil {
			continue
		}
		out = append(out, amount{value: v, cents: m[2] != "" && m[2] != ".00"})
	}
	return out
}

// totalCost collects amounts near total/amount paid/price keywords (any
// amount in the text when none are), then picks in tiers: plausible amounts
// with real cents, plausible amounts over the high-value floor, then
// everything collected. The maximum of the first non-empty tier wins. The
// cents preference exists because a fractional amount is a strong signal of
// a genuine currency total rather than an incidental integer.
func totalCost(text string) string {
	var cands []amount
	for _, loc := range reCostKeyword.FindAllStringIndex(text, -1) {
		end := loc[1] + costWindow
		if end > len(text) {
			end = len(text)
		}
		cands = append(cands, amountsIn(text[loc[1]:end])...)
	}
	if len(cands) == 0 {
		cands = amountsIn(text)
	}
	if len(cands) == 0 {
		return ""
	}

	var withCents, high []amount
	for _, a := range cands {
		if a.value <= constants.MinPlausibleCost || a.value >= constants.MaxPlausibleCost {
			continue
		}
		if a.cents {
			withCents = append(withCents, a)
		}
		if a.value >= highValueFloor {
			high = append(high, a)
		}
	}

	tier := withCents
	if len(tier) == 0 {
		tier = high
	}
	if len(tier) == 0 {
		tier = cands
	}

	best := tier[0].value
	for _, a := range tier[1:] {
		if a.value > best {
			best = a.value
		}
	}
	return fmt.Sprintf("%.2f", best)
}

// currency infers EUR from a euro sign or "EUR", else USD from a dollar
// sign or "USD".
func currency(text string) string {
	if strings.Contains(text, "€") || strings.Contains(text, "EUR") {
		return constants.EUR
	}
	if strings.Contains(text, "$") || strings.Contains(text, "USD") {
		return constants.USD
	}
	return ""
}

// paidFlag is true when the text says paid without deferring payment.
func paidFlag(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "paid") &&
		!strings.Contains(lower, "to be paid") &&
		!strings.Contains(lower, "pay at property")
}
