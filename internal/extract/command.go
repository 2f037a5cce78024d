package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Command drives an external extraction binary (a pdftotext/tesseract
// wrapper script, a cloud-OCR client, anything that prints text for a file
// path). The binary is the black box; this adapter only shapes its output
// into a TextExtractionResult.
type Command struct {
	Bin     string
	Args    []string
	Timeout time.Duration
}

func NewCommand(bin string, args ...string) *Command {
	return &Command{Bin: bin, Args: args, Timeout: 2 * time.Minute}
}

func (c *Command) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, c.Args...), path)
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return TextExtractionResult{}, fmt.Errorf("%s %s: %w (stderr: %s)",
			filepath.Base(c.Bin), path, err, strings.TrimSpace(stderr.String()))
	}

	res := TextExtractionResult{
		Text:       stdout.String(),
		SourceType: "COMMAND",
		Method:     filepath.Base(c.Bin),
		Duration:   time.Since(start),
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		res.Warnings = append(res.Warnings, msg)
	}
	return res, nil
}
