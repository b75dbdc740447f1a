package compress

// NoOpCompressor stores payloads uncompressed. Both directions return the
// input slice itself.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a codec that leaves payloads as they are.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The result aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSized returns data unchanged after checking its length.
func (c NoOpCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, sizeMismatch("none", len(data), size)
	}

	return data, nil
}
