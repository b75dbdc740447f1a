package compress

import "github.com/klauspost/compress/s2"

// S2Compressor uses S2, a Snappy-compatible format tuned for speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a single S2 block. Empty input yields nil.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized checks the length recorded in the S2 block against size
// before decoding into a buffer of that size.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, sizeMismatch("s2", 0, size)
		}

		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch("s2", n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
