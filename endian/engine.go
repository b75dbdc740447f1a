// Package endian provides the byte orders used to lay out UTF-16 code units
// and frame headers.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so a
// single value can both patch fixed offsets and append to a growing buffer:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, 0xD83D) // UTF-16BE high surrogate
//
// All functions are safe for concurrent use; the engines are stateless.
package endian

import "encoding/binary"

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine is the big-endian engine.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// AppendUnits appends UTF-16 code units to dst in the engine's byte order.
func AppendUnits(engine EndianEngine, dst []byte, units []uint16) []byte {
	for _, u := range units {
		dst = engine.AppendUint16(dst, u)
	}

	return dst
}
