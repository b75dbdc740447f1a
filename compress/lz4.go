package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps a hash table between calls, so instances are pooled.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Output bounds the buffer Decompress will try before giving up.
const maxLZ4Output = 128 * 1024 * 1024

// LZ4Compressor stores payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 block codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block. Empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block.
//
// A raw block does not record its decoded size, so the output buffer starts
// at four times the input and doubles on ErrInvalidSourceShortBuffer until it
// reaches 128MiB. Use DecompressSized when the size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize >= maxLZ4Output {
			return nil, err
		}

		bufSize = min(bufSize*2, maxLZ4Output)
	}
}

// DecompressSized decodes one LZ4 block into a buffer of exactly size bytes.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch("lz4", 0, size)
		}

		return nil, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch("lz4", n, size)
	}

	return buf, nil
}
