package parse

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestParseKnownVendorConfirmation(t *testing.T) {
	text := "Chic stay HANA Boutique hotel\n" +
		"Check-in: Nov 30, 2025\n" +
		"Check-out: Dec 3, 2025\n"

	rec := Parse(text)

	assert.Equal(t, "Chic stay HANA Boutique hotel", rec.HotelName)
	assert.Equal(t, "2025-11-30", rec.CheckInDate)
	assert.Equal(t, "2025-12-03", rec.CheckOutDate)
	assert.Equal(t, "2025-11-23", rec.FreeCancelBy)
}

func TestParseEmptyInput(t *testing.T) {
	rec := Parse("")

	assert.True(t, rec.Empty())
	assert.False(t, rec.BreakfastIncluded)
	assert.False(t, rec.Paid)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"breakfastIncluded":false,"paid":false}`, string(raw))
}

func TestParseTotalPrefersLabeledFractionalAmount(t *testing.T) {
	text := "Booking summary\nTotal: $123.45\nRoom rate: $50\n"

	rec := Parse(text)

	assert.Equal(t, "123.45", rec.TotalCost)
	assert.Equal(t, "USD", rec.Currency)
}

func TestParseGuestFromGreeting(t *testing.T) {
	rec := Parse("Thanks, Bryan Duerk")
	assert.Equal(t, "Bryan Duerk", rec.GuestName)
}

func TestParseUnlabeledDatePair(t *testing.T) {
	text := "Your stay spans Mar 5, 2026 through Mar 15, 2026.\n"

	rec := Parse(text)

	assert.Equal(t, "2026-03-05", rec.CheckInDate)
	assert.Equal(t, "2026-03-15", rec.CheckOutDate)
}

func TestParseCancellationDeadlineExcludedFromPairing(t *testing.T) {
	t.Run("labeled stay", func(t *testing.T) {
		text := "Rate notes: free cancellation until Nov 23, 2025\n" +
			"Check-in: Nov 30, 2025\n" +
			"Check-out: Dec 3, 2025\n"

		rec := Parse(text)

		assert.Equal(t, "2025-11-23", rec.FreeCancelBy)
		assert.Equal(t, "2025-11-30", rec.CheckInDate)
		assert.Equal(t, "2025-12-03", rec.CheckOutDate)
	})

	t.Run("unlabeled stay", func(t *testing.T) {
		text := "Stay between Nov 30, 2025 and Dec 3, 2025\n" +
			"free cancellation until Nov 23, 2025\n"

		rec := Parse(text)

		assert.Equal(t, "2025-11-23", rec.FreeCancelBy)
		assert.Equal(t, "2025-11-30", rec.CheckInDate)
		assert.Equal(t, "2025-12-03", rec.CheckOutDate)
	})
}

func TestParseDeadlineAbsorbedIntoPairIsRepaired(t *testing.T) {
	// The closest pair is Nov 29/Nov 30, but Nov 29 is the cancellation
	// deadline; the final re-pairing must hand the stay to Nov 30/Dec 10.
	text := "free cancellation until Nov 29, 2025\n" +
		"Dates to remember: Nov 29, 2025, Nov 30, 2025, Dec 10, 2025\n"

	rec := Parse(text)

	assert.Equal(t, "2025-11-29", rec.FreeCancelBy)
	assert.Equal(t, "2025-11-30", rec.CheckInDate)
	assert.Equal(t, "2025-12-10", rec.CheckOutDate)
}

func TestParseInfersCancellationDeadline(t *testing.T) {
	text := "Offer valid from Nov 23, 2025\nCheck-in: Nov 30, 2025\n"

	rec := Parse(text)

	assert.Equal(t, "2025-11-30", rec.CheckInDate)
	assert.Equal(t, "2025-11-23", rec.FreeCancelBy)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\x00\xff\xfe\x01 binary garbage \x80",
		"12345 67890 !!! ??? ,,, :::",
		strings.Repeat("a", 3<<20),
		strings.Repeat("Nov 30, 2025 ", 500),
		"🏨🏨🏨 héllo wörld 🏨🏨🏨",
		"Total: Total: Total: $",
	}
	for _, in := range inputs {
		require.NotPanics(t, func() {
			rec := Parse(in)
			for _, d := range []string{rec.CheckInDate, rec.CheckOutDate} {
				if d != "" {
					assert.Regexp(t, reISODate, d)
				}
			}
			if rec.TotalCost != "" {
				assert.Regexp(t, `^\d+\.\d{2}$`, rec.TotalCost)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "Chic stay HANA Boutique hotel\n" +
		"Guest: Bryan Duerk\n" +
		"Check-in: Nov 30, 2025\nCheck-out: Dec 3, 2025\n" +
		"Total: $842.10 paid\nBreakfast included\n"

	a, err := json.Marshal(Parse(text))
	require.NoError(t, err)
	b, err := json.Marshal(Parse(text))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseFullConfirmation(t *testing.T) {
	text := "Hotel name: The Grandmere\n" +
		"Guest: BRYAN DUERK\n" +
		"Address: 12 Baker Street, London\n" +
		"Check-in: Nov 30, 2025\n" +
		"Check-out: Dec 3, 2025\n" +
		"2 rooms, breakfast included\n" +
		"Amount paid: $1,234.56\n" +
		"Phone: +44 20 7946 0102\n"

	rec := Parse(text)

	assert.Equal(t, "The Grandmere", rec.HotelName)
	assert.Equal(t, "Bryan Duerk", rec.GuestName)
	assert.Equal(t, "2025-11-30", rec.CheckInDate)
	assert.Equal(t, "2025-12-03", rec.CheckOutDate)
	assert.Equal(t, "2", rec.Rooms)
	assert.True(t, rec.BreakfastIncluded)
	assert.Equal(t, "1234.56", rec.TotalCost)
	assert.Equal(t, "USD", rec.Currency)
	assert.True(t, rec.Paid)
	assert.Equal(t, "12 Baker Street, London", rec.Address)
	assert.Equal(t, "+44 20 7946 0102", rec.Phone)
}

func TestGuestNameHeuristics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"label", "Guest: Bryan Duerk", "Bryan Duerk"},
		{"label uppercase", "GUEST: BRYAN DUERK", "Bryan Duerk"},
		{"reservation for", "Reservation for John Smith (lead)", "John Smith"},
		{"email", "Booked by Jane Doe <jane@example.com>", "Jane Doe"},
		{"disclaimer rejected", "Guest: max capacity two", ""},
		{"online disclaimer rejected", "Guest: see confirmation online", ""},
		{"no candidate", "No names here.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).GuestName)
		})
	}
}

func TestHotelNameShortestCandidateWins(t *testing.T) {
	text := "We hope you enjoy your time at the Plaza hotel\n" +
		"our partner recommends the long stay Grand Excelsior Continental hotel\n"

	rec := Parse(text)
	assert.True(t, strings.HasSuffix(rec.HotelName, "Plaza hotel"), "got %q", rec.HotelName)
}

func TestFreeCancelVerbatimFallback(t *testing.T) {
	rec := Parse("free cancellation until arrival day\n")
	assert.Equal(t, "arrival day", rec.FreeCancelBy)
}

func TestPaidFlag(t *testing.T) {
	assert.True(t, Parse("Amount paid: $200.00").Paid)
	assert.False(t, Parse("Total of $200.00 to be paid at the desk").Paid)
	assert.False(t, Parse("paid — pay at property on arrival").Paid)
	assert.False(t, Parse("Total: $200.00").Paid)
}
