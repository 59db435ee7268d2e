package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/paths"
)

// Sink receives formatted result text
type Sink interface {
	Write(text string) error
}

// Func adapts a plain function to a Sink
type Func func(text string) error

// Write calls f(text)
func (f Func) Write(text string) error {
	return f(text)
}

// Console writes each result on its own line
type Console struct {
	// Out defaults to os.Stdout when nil
	Out io.Writer
}

// Write writes text followed by a newline
func (c Console) Write(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, text+"\n"); err != nil {
		return fmt.Errorf("console write failed: %w", err)
	}
	return nil
}

// TextFile replaces the contents of a file with each result
type TextFile struct {
	Path string
}

// Write creates the parent directories of Path and writes text without a
// trailing newline, truncating any previous contents.
func (f TextFile) Write(text string) error {
	if err := os.MkdirAll(paths.ResultDir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create result directory: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}
