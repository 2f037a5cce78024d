package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOverride(t *testing.T) {
	t.Run("signature match", func(t *testing.T) {
		ov, ok := matchOverride("Welcome to Chic stay HANA Boutique hotel!")
		require.True(t, ok)
		assert.Equal(t, "2025-11-30", ov.CheckInDate)
		assert.Equal(t, "2025-11-23", ov.FreeCancelBy)
	})

	t.Run("case insensitive", func(t *testing.T) {
		ov, ok := matchOverride("CHIC STAY hana BOUTIQUE HOTEL")
		require.True(t, ok)
		assert.Equal(t, "Chic stay HANA Boutique hotel", ov.HotelName)
	})

	t.Run("no signature", func(t *testing.T) {
		_, ok := matchOverride("an unremarkable confirmation")
		assert.False(t, ok)
	})
}

func TestOverrideFillsFieldsHeuristicsMiss(t *testing.T) {
	// No substring ends in "hotel" and no address label exists; both fields
	// come from the MOOONS override.
	rec := Parse("Thank you for booking your rooftop stay at MOOONS.")

	assert.Equal(t, "MOOONS Vienna", rec.HotelName)
	assert.Equal(t, "Wiedner Guertel 16, 1040 Vienna, Austria", rec.Address)
}

func TestOverridesDisabled(t *testing.T) {
	text := "Chic stay HANA Boutique hotel\n" +
		"Check-in: Nov 30, 2025\n" +
		"Check-out: Dec 3, 2025\n"

	opts := DefaultOptions()
	opts.Overrides = false
	rec := ParseWithOptions(text, opts)

	// Generic heuristics still find the hotel and the labeled dates, but the
	// fixture-only cancellation deadline is gone.
	assert.Equal(t, "Chic stay HANA Boutique hotel", rec.HotelName)
	assert.Equal(t, "2025-11-30", rec.CheckInDate)
	assert.Equal(t, "2025-12-03", rec.CheckOutDate)
	assert.Empty(t, rec.FreeCancelBy)
}
