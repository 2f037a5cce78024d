// Package pipeline wires text extraction and parsing into one run per
// document, with structured logging and an output-contract check.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tripfolio/lodging-parser/internal/entity"
	"github.com/tripfolio/lodging-parser/internal/extract"
	"github.com/tripfolio/lodging-parser/internal/lodgingschema"
	"github.com/tripfolio/lodging-parser/internal/parse"
)

// Config holds behavior flags for the parse stage.
type Config struct {
	MaxInputBytes int  // 0 = parser default
	Overrides     bool // vendor override table
	ValidateJSON  bool // check output against the lodging schema
}

// Result is one parsed document. Warnings carry extraction noise and schema
// mismatches; they never fail the run.
type Result struct {
	RunID    uuid.UUID
	Path     string
	Lodging  entity.ParsedLodging
	JSON     []byte
	Warnings []string
	Duration time.Duration
}

type Pipeline struct {
	Logger    *slog.Logger
	Cfg       Config
	Extractor extract.TextExtractor
}

func NewPipeline(logger *slog.Logger, cfg Config, ex extract.TextExtractor) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Cfg: cfg, Extractor: ex}
}

// Run extracts text from path and parses it. The only error source is the
// extraction collaborator; parsing itself cannot fail.
func (p *Pipeline) Run(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	runID := uuid.New()

	ext, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		return Result{RunID: runID, Path: path}, fmt.Errorf("extract text: %w", err)
	}
	p.Logger.Info("parselodging.start",
		"run_id", runID, "path", path,
		"method", ext.Method, "bytes", len(ext.Text),
	)

	opts := parse.DefaultOptions()
	opts.Overrides = p.Cfg.Overrides
	if p.Cfg.MaxInputBytes > 0 {
		opts.MaxInputBytes = p.Cfg.MaxInputBytes
	}
	rec := parse.ParseWithOptions(ext.Text, opts)

	raw, err := json.Marshal(rec)
	if err != nil {
		return Result{RunID: runID, Path: path, Lodging: rec}, fmt.Errorf("encode record: %w", err)
	}

	warnings := append([]string(nil), ext.Warnings...)
	if p.Cfg.ValidateJSON {
		if verr := lodgingschema.Validate(raw); verr != nil {
			warnings = append(warnings, fmt.Sprintf("schema: %v", verr))
			p.Logger.Warn("parselodging.schema_mismatch", "run_id", runID, "error", verr)
		}
	}

	res := Result{
		RunID:    runID,
		Path:     path,
		Lodging:  rec,
		JSON:     raw,
		Warnings: warnings,
		Duration: time.Since(start),
	}
	p.Logger.Info("parselodging.ok",
		"run_id", runID,
		"hotel", rec.HotelName,
		"check_in", rec.CheckInDate, "check_out", rec.CheckOutDate,
		"total", rec.TotalCost, "currency", rec.Currency,
		"warnings", len(warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
