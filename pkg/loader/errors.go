package loader

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrMalformedLine          = errors.New("malformed input line")
	ErrUnsupportedCompression = errors.New("unsupported compression")
	ErrInvalidSource          = errors.New("invalid source")
)

// ParseError reports the input line that could not be parsed
type ParseError struct {
	Path  string // Source the line came from
	Line  int    // 1-based line number
	Text  string // Offending line, truncated
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s:%d %q: %v", e.Path, e.Line, e.Text, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

const maxQuotedLine = 80

// malformed builds a ParseError wrapping ErrMalformedLine
func malformed(path string, line int, text string, reason error) error {
	if len(text) > maxQuotedLine {
		text = text[:maxQuotedLine] + "..."
	}
	cause := ErrMalformedLine
	if reason != nil {
		cause = fmt.Errorf("%w: %w", ErrMalformedLine, reason)
	}
	return &ParseError{Path: path, Line: line, Text: text, Cause: cause}
}

// IsMalformed returns true if err was caused by an unparsable input line
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}
