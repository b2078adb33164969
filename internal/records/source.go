// Package records reads raw birthdate lines from a source and turns them
// into birthday.Person values.
package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnreadable is wrapped by Source implementations when the underlying
// data cannot be read.
var ErrUnreadable = errors.New("unable to read file")

// Source yields the raw text lines of a birthdate file.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// FileSource reads lines from a file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrUnreadable, s.Path, err)
	}
	return splitLines(string(data)), nil
}

// ReaderSource reads lines from an io.Reader. Name identifies the reader in
// errors.
type ReaderSource struct {
	Name string
	R    io.Reader
}

func (s ReaderSource) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(s.R)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrUnreadable, s.Name, err)
	}
	return splitLines(string(data)), nil
}

// splitLines splits on \n and drops a trailing \r from each line. A final
// newline does not produce an extra line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
