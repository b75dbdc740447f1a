package frame

const (
	// HeaderSize is the size in bytes of the fixed frame header.
	HeaderSize = 24

	// MaxPayloadSize is the largest uncompressed payload a frame may hold.
	// Decode rejects headers claiming more before allocating anything.
	MaxPayloadSize = 1 << 30 // 1GiB

	EndiannessMask  = 0x0001 // set for big-endian frames
	ChecksumMask    = 0x0002 // set when the checksum field is populated
	ReservedMask    = 0x000C
	MagicNumberMask = 0xFFF0

	// MagicTextV1 identifies version 1 of the frame format.
	MagicTextV1 = 0xC710
)

const (
	optionsOffset     = 0
	formOffset        = 2
	compressionOffset = 3
	scalarCountOffset = 4
	unitCountOffset   = 8
	payloadSizeOffset = 12
	checksumOffset    = 16
)
