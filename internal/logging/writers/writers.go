// Package writers resolves a log output specification into an io.Writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"

	filePrefix = "file://"
)

// CreateWriter creates an io.Writer based on the output specification.
// Supported formats:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout
//   - "file:///path/to/file" - appends to the file, creating parent directories
//   - "/path/to/file" or "./file" - same as file://
func CreateWriter(output string) (io.Writer, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return os.Stdout, nil
	case WriterTypeStderr:
		return os.Stderr, nil
	case WriterTypeFile:
		return createFileWriter(strings.TrimPrefix(output, filePrefix))
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

// ParseWriterType determines the writer type from an output string. An empty
// string is returned for specifications CreateWriter cannot handle.
func ParseWriterType(output string) WriterType {
	switch {
	case output == "" || strings.EqualFold(output, "stderr"):
		return WriterTypeStderr
	case strings.EqualFold(output, "stdout"):
		return WriterTypeStdout
	case strings.HasPrefix(output, filePrefix):
		return WriterTypeFile
	case isFilePath(output):
		return WriterTypeFile
	default:
		return ""
	}
}

func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

func createFileWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Closer returns a closer for w. The process standard streams are never closed.
func Closer(w io.Writer) io.Closer {
	if w == os.Stdout || w == os.Stderr {
		return nopCloser{}
	}
	if c, ok := w.(io.Closer); ok {
		return c
	}
	return nopCloser{}
}
