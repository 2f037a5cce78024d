package extract

import (
	"context"
	"time"
)

// TextExtractor is the stage before parsing: file -> text. OCR and PDF text
// extraction stay behind this boundary; the parser only ever sees the
// resulting string.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	SourceType string // "TXT" | "COMMAND"
	Method     string // "plain-text" | extractor binary name
	Duration   time.Duration
	Warnings   []string
}
