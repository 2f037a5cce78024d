package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/lodging-parser/internal/extract"
)

type fakeExtractor struct {
	text     string
	warnings []string
	err      error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{
		Text:       f.text,
		SourceType: "TXT",
		Method:     "fake",
		Warnings:   f.warnings,
	}, nil
}

func TestPipelineRun(t *testing.T) {
	ex := &fakeExtractor{text: "Riverside hotel\nCheck-in: Nov 30, 2025\nCheck-out: Dec 3, 2025\nTotal: $412.76\n"}
	p := NewPipeline(nil, Config{Overrides: true, ValidateJSON: true}, ex)

	res, err := p.Run(context.Background(), "in/riverside.txt")
	require.NoError(t, err)
	assert.Equal(t, "in/riverside.txt", res.Path)
	assert.Equal(t, "Riverside hotel", res.Lodging.HotelName)
	assert.Equal(t, "2025-11-30", res.Lodging.CheckInDate)
	assert.Equal(t, "2025-12-03", res.Lodging.CheckOutDate)
	assert.Equal(t, "412.76", res.Lodging.TotalCost)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, string(res.JSON), `"hotelName":"Riverside hotel"`)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", res.RunID.String())
}

func TestPipelineRunExtractError(t *testing.T) {
	boom := errors.New("scanner offline")
	p := NewPipeline(nil, Config{}, &fakeExtractor{err: boom})

	_, err := p.Run(context.Background(), "in/missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "extract text")
}

func TestPipelineRunCarriesExtractionWarnings(t *testing.T) {
	ex := &fakeExtractor{text: "Plaza hotel\n", warnings: []string{"input is not valid UTF-8"}}
	p := NewPipeline(nil, Config{ValidateJSON: true}, ex)

	res, err := p.Run(context.Background(), "in/scan.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"input is not valid UTF-8"}, res.Warnings)
}

func TestPipelineRunSchemaMismatchIsWarning(t *testing.T) {
	// A cancellation phrase with no parseable date is kept verbatim, which the
	// output contract rejects; the run must still succeed.
	ex := &fakeExtractor{text: "Plaza hotel\nFree cancellation until arrival day\n"}
	p := NewPipeline(nil, Config{ValidateJSON: true}, ex)

	res, err := p.Run(context.Background(), "in/verbatim.txt")
	require.NoError(t, err)
	assert.Equal(t, "arrival day", res.Lodging.FreeCancelBy)
	require.Len(t, res.Warnings, 1)
	assert.True(t, strings.HasPrefix(res.Warnings[0], "schema: "))
}

func TestPipelineRunSchemaCheckDisabled(t *testing.T) {
	ex := &fakeExtractor{text: "Plaza hotel\nFree cancellation until arrival day\n"}
	p := NewPipeline(nil, Config{}, ex)

	res, err := p.Run(context.Background(), "in/verbatim.txt")
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}
