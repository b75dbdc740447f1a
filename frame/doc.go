// Package frame stores text as a self-describing binary frame.
//
// A frame is a fixed 24-byte header followed by the payload: the text laid
// out as UTF-8 bytes or as UTF-16 code units in either byte order, optionally
// compressed.
//
// Header layout (fields after the options word use the frame's byte order):
//
//	offset  size  field
//	0       2     options: bit 0 big-endian, bit 1 checksum, bits 2-3 reserved,
//	              bits 4-15 magic number (0xC710), always little-endian
//	2       1     encoding form (format.Form)
//	3       1     compression (format.CompressionType)
//	4       4     scalar value count
//	8       4     code unit count
//	12      4     uncompressed payload size in bytes
//	16      8     xxHash64 of the uncompressed payload, 0 when disabled
//
// Encode and Decode are safe for concurrent use.
package frame
