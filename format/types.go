package format

type (
	Form            uint8
	CompressionType uint8
)

const (
	FormUTF8  Form = 0x1 // FormUTF8 stores each scalar value as 1-4 bytes.
	FormUTF16 Form = 0x2 // FormUTF16 stores each scalar value as 1-2 sixteen-bit code units.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// UnitSize returns the size in bytes of a single code unit of the form, or 0 if unknown.
func (f Form) UnitSize() int {
	switch f {
	case FormUTF8:
		return 1
	case FormUTF16:
		return 2
	default:
		return 0
	}
}

// IsValid reports whether f is a known form.
func (f Form) IsValid() bool {
	return f == FormUTF8 || f == FormUTF16
}

// String returns the conventional name of the form, e.g. "UTF-16".
func (f Form) String() string {
	switch f {
	case FormUTF8:
		return "UTF-8"
	case FormUTF16:
		return "UTF-16"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// String returns the name of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
