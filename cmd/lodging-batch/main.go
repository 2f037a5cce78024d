package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tripfolio/lodging-parser/constants"
	"github.com/tripfolio/lodging-parser/internal/common"
	"github.com/tripfolio/lodging-parser/internal/export"
	"github.com/tripfolio/lodging-parser/internal/extract"
	"github.com/tripfolio/lodging-parser/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	_ = godotenv.Load()

	var (
		dir    = flag.String("dir", "", "directory of confirmation .txt files (required)")
		out    = flag.String("out", "", "output JSONL path (optional, defaults to stdout)")
		golden = flag.String("golden", "", "directory of expected .json files to compare against")
		xlsx   = flag.String("xlsx", "", "optional XLSX report path")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{}))
	slog.SetDefault(logger)
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	files, err := listConfirmations(*dir)
	if err != nil {
		printError("Error: scan %s: %v\n", *dir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		printError("Error: no .txt files under %s\n", *dir)
		os.Exit(1)
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

	ctx := context.Background()
	start := time.Now()
	var results []pipeline.Result
	failures := 0

	sink := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			printError("Error: create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logger.Error("close output", "path", *out, "error", cerr)
			}
		}()
		sink = f
	}

	for _, path := range files {
		res, err := p.Run(ctx, path)
		if err != nil {
			logger.Error("batch item failed", "path", path, "error", err)
			failures++
			continue
		}
		results = append(results, res)
		fmt.Fprintln(sink, string(res.JSON))

		if *golden != "" {
			if ok := compareGolden(logger, *golden, path, res.JSON); !ok {
				failures++
			}
		}
	}

	if *xlsx != "" && len(results) > 0 {
		b, err := export.NewService(logger).ExportXLSX(results)
		if err != nil {
			printError("Error: export xlsx: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, b, 0o644); err != nil {
			printError("Error: write %s: %v\n", *xlsx, err)
			os.Exit(1)
		}
	}

	logger.Info("batch done",
		"files", len(files), "parsed", len(results), "failures", failures,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if failures > 0 {
		os.Exit(1)
	}
}

func listConfirmations(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// compareGolden checks the parse output against <goldenDir>/<base>.json,
// comparing canonicalized JSON so formatting differences don't matter.
func compareGolden(logger *slog.Logger, goldenDir, srcPath string, got []byte) bool {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	goldenPath := filepath.Join(goldenDir, base+".json")

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		logger.Error("golden missing", "path", goldenPath, "error", err)
		return false
	}
	wantC, err := canonicalJSON(want)
	if err != nil {
		logger.Error("golden invalid", "path", goldenPath, "error", err)
		return false
	}
	gotC, err := canonicalJSON(got)
	if err != nil {
		logger.Error("output invalid", "path", srcPath, "error", err)
		return false
	}
	if !bytes.Equal(wantC, gotC) {
		logger.Error("golden mismatch", "file", base, "want", string(wantC), "got", string(gotC))
		fmt.Printf("FAIL %s\n", base)
		return false
	}
	fmt.Printf("PASS %s\n", base)
	return true
}

func canonicalJSON(b []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
