//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses data with libzstd. Empty input yields nil.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressSized decompresses data with libzstd into a buffer preallocated to size.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch("zstd", 0, size)
		}

		return nil, nil
	}

	out, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) != size {
		return nil, sizeMismatch("zstd", len(out), size)
	}

	return out, nil
}
