package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tripfolio/lodging-parser/internal/common"
	"github.com/tripfolio/lodging-parser/internal/extract"
	"github.com/tripfolio/lodging-parser/internal/parse"
	"github.com/tripfolio/lodging-parser/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parselodging <confirmation.txt | ->")
		os.Exit(2)
	}
	path := os.Args[1]

	opts := parse.Options{
		Overrides:     cfg.Parse.Overrides,
		MaxInputBytes: cfg.Parse.MaxInputBytes,
	}

	// "-" parses stdin directly; anything else goes through the extraction
	// pipeline.
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(1)
		}
		printRecord(logger, parse.ParseWithOptions(string(b), opts))
		return
	}

	var extractor extract.TextExtractor = extract.NewPlainText()
	if cfg.Extract.Command != "" {
		cmd := extract.NewCommand(cfg.Extract.Command)
		cmd.Timeout = cfg.Extract.Timeout
		extractor = cmd
	}

	p := pipeline.NewPipeline(logger, pipeline.Config{
		MaxInputBytes: cfg.Parse.MaxInputBytes,
		Overrides:     cfg.Parse.Overrides,
		ValidateJSON:  true,
	}, extractor)

	res, err := p.Run(context.Background(), path)
	if err != nil {
		logger.Error("parse failed", "path", path, "error", err)
		os.Exit(1)
	}
	printRecord(logger, res.Lodging)
}

func printRecord(logger *slog.Logger, rec any) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func logLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
