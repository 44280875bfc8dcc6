package loader

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// Compression selects how input files are decoded
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionGzip   Compression = "gzip"
	CompressionSnappy Compression = "snappy"
)

// ParseCompression converts a name to a Compression. The empty string means
// no compression.
func ParseCompression(name string) (Compression, error) {
	switch Compression(name) {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip:
		return CompressionGzip, nil
	case CompressionSnappy:
		return CompressionSnappy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCompression, name)
	}
}

// decompress wraps r according to c. The returned closer releases the
// decoder only; r itself is left open.
func decompress(r io.Reader, c Compression) (io.Reader, io.Closer, error) {
	switch c {
	case CompressionNone, "":
		return r, io.NopCloser(nil), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return zr, zr, nil
	case CompressionSnappy:
		// Framed stream format, as written by snappy.NewBufferedWriter
		return snappy.NewReader(r), io.NopCloser(nil), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, c)
	}
}
