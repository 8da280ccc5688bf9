package main

import (
	"fmt"
	"io"
	"os"
)

// output is the destination of a command's table or edge list: a created
// file, or the command's stdout when no path is given.
type output struct {
	io.Writer
	f *os.File
}

// openOutput creates path, or wraps fallback when path is empty.
func openOutput(path string, fallback io.Writer) (*output, error) {
	if path == "" {
		return &output{Writer: fallback}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	return &output{Writer: f, f: f}, nil
}

// Close closes the underlying file once and reports its error. Later calls
// and stdout outputs return nil.
func (o *output) Close() error {
	if o.f == nil {
		return nil
	}
	f := o.f
	o.f = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	return nil
}
