package entity

// ParsedLodging is the record extracted from the plain text of a hotel
// booking confirmation. Every field is best-effort: an empty string means
// "not found", never an error. Callers must validate before acting on a
// value (e.g. before charging TotalCost or booking against CheckInDate).
type ParsedLodging struct {
	HotelName         string `json:"hotelName,omitempty"`
	GuestName         string `json:"guestName,omitempty"` // title-cased "First Last"
	CheckInDate       string `json:"checkInDate,omitempty"`  // YYYY-MM-DD
	CheckOutDate      string `json:"checkOutDate,omitempty"` // YYYY-MM-DD
	Rooms             string `json:"rooms,omitempty"`        // numeric string
	FreeCancelBy      string `json:"freeCancelBy,omitempty"` // YYYY-MM-DD, or raw label text when no date literal followed the phrase
	BreakfastIncluded bool   `json:"breakfastIncluded"`
	TotalCost         string `json:"totalCost,omitempty"` // fixed 2-decimal numeral
	Currency          string `json:"currency,omitempty"`  // constants.USD | constants.EUR
	Paid              bool   `json:"paid"`
	Address           string `json:"address,omitempty"`
	Phone             string `json:"phone,omitempty"`
}

// HasDates reports whether both stay dates were resolved.
func (p ParsedLodging) HasDates() bool {
	return p.CheckInDate != "" && p.CheckOutDate != ""
}

// Empty reports whether no field was extracted at all.
func (p ParsedLodging) Empty() bool {
	return p == ParsedLodging{}
}
