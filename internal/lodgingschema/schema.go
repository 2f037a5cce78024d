// Package lodgingschema pins down the JSON shape of a serialized
// ParsedLodging. The parser is best-effort, so validation lives with the
// callers: the pipeline reports a mismatch as a warning, tests assert it.
package lodgingschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tripfolio/lodging-parser/constants"
)

// Build returns the JSON-Schema (draft 2020-12 subset) as a generic map.
func Build() map[string]any {
	props := map[string]any{
		"hotelName":         map[string]any{"type": "string", "minLength": 1},
		"guestName":         map[string]any{"type": "string", "minLength": 1},
		"checkInDate":       dateProp(),
		"checkOutDate":      dateProp(),
		"rooms":             map[string]any{"type": "string", "pattern": `^\d+$`},
		"freeCancelBy":      dateProp(),
		"breakfastIncluded": map[string]any{"type": "boolean"},
		"totalCost":         map[string]any{"type": "string", "pattern": `^\d+\.\d{2}$`},
		"currency":          map[string]any{"type": "string", "enum": []string{constants.USD, constants.EUR}},
		"paid":              map[string]any{"type": "boolean"},
		"address":           map[string]any{"type": "string", "minLength": 1},
		"phone":             map[string]any{"type": "string", "minLength": 1},
	}
	required := []string{"breakfastIncluded", "paid"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

// Validate checks a serialized record against the schema.
func Validate(data []byte) error {
	b, err := json.Marshal(Build())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("lodging.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("lodging.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
