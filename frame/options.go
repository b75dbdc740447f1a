package frame

import (
	"fmt"

	"github.com/arloliu/runekit/endian"
	"github.com/arloliu/runekit/errs"
	"github.com/arloliu/runekit/format"
	"github.com/arloliu/runekit/internal/options"
)

type encoderConfig struct {
	form        format.Form
	engine      endian.EndianEngine
	compression format.CompressionType
	checksum    bool
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*encoderConfig]

func newEncoderConfig(opts []EncoderOption) (*encoderConfig, error) {
	cfg := &encoderConfig{
		form:        format.FormUTF8,
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		checksum:    true,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithForm selects the encoding form of the payload. The default is UTF-8.
func WithForm(form format.Form) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !form.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidForm, uint8(form))
		}
		c.form = form

		return nil
	})
}

// WithUTF16LittleEndian selects UTF-16LE.
func WithUTF16LittleEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.form = format.FormUTF16
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithUTF16BigEndian selects UTF-16BE.
func WithUTF16BigEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.form = format.FormUTF16
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithBigEndian writes the header counters, and UTF-16 units if selected, in
// big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression selects the payload codec. The default is none.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.checksum = enabled
	})
}
