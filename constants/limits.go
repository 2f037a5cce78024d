package constants

// Heuristic tuning values. These bound the extraction heuristics; changing
// them changes which candidates win, so treat them as behavior, not config.
const (
	// MaxStayNights is the longest span the date-pairing heuristic accepts as
	// a plausible check-in/check-out pair.
	MaxStayNights = 60

	// CancelWindowDays is the preferred gap between a free-cancellation
	// deadline and check-in when the deadline has to be inferred.
	CancelWindowDays = 14

	// MinPlausibleCost and MaxPlausibleCost bound (exclusive) the amounts the
	// cost pass considers believable booking totals.
	MinPlausibleCost = 1
	MaxPlausibleCost = 10000

	// DefaultMaxInputBytes caps confirmation text fed to the regex passes.
	DefaultMaxInputBytes = 1 << 20
)
