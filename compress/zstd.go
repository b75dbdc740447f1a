package compress

// ZstdCompressor uses Zstandard at the default level. It gives the best ratio
// of the built-in codecs and suits frames that are stored rather than streamed.
//
// The pure Go implementation (klauspost/compress) is used unless the module is
// built with the gozstd tag, which switches to the cgo binding of libzstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
