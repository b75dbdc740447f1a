// Package compress provides the codecs applied to encoded frame payloads.
//
// A frame payload is text already laid out as UTF-8 bytes or UTF-16 code
// units. Compression runs after that layout and before the header is attached:
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: fast, moderate ratio
//   - LZ4: fastest decompression
//
// All codecs returned by this package are safe for concurrent use.
package compress

import (
	"fmt"

	"github.com/arloliu/runekit/errs"
	"github.com/arloliu/runekit/format"
)

// Compressor compresses a complete frame payload.
//
// The input is not modified. Except for the no-op codec the result is newly
// allocated and owned by the caller.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm and reports an
// error for corrupted or foreign input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)

	// DecompressSized decompresses data whose decoded size is known in
	// advance. The output is allocated once with that size, and a result of
	// any other length is an error wrapping errs.ErrPayloadSizeMismatch.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

func sizeMismatch(codec string, got, want int) error {
	return fmt.Errorf("%w: %s decoded %d bytes, want %d", errs.ErrPayloadSizeMismatch, codec, got, want)
}

// GetCodec returns the shared codec for compressionType, or an error wrapping
// errs.ErrInvalidCompression.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}
