package extract

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
)

// PlainText reads files that already contain extracted confirmation text.
type PlainText struct{}

func NewPlainText() *PlainText {
	return &PlainText{}
}

func (p *PlainText) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	res := TextExtractionResult{
		Text:       string(b),
		SourceType: "TXT",
		Method:     "plain-text",
		Duration:   time.Since(start),
	}
	if !utf8.Valid(b) {
		res.Warnings = append(res.Warnings, "input is not valid UTF-8")
	}
	return res, nil
}
