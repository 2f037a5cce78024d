package constants

// Currency codes the parser can infer from confirmation text.
// Stable values (these exact strings appear in serialized records).
const (
	USD = "USD"
	EUR = "EUR"
)
