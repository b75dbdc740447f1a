package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"longer", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsSingleBitFlip(t *testing.T) {
	payload := []byte("é€\U0001F600")
	sum := Checksum(payload)

	for i := range payload {
		flipped := append([]byte(nil), payload...)
		flipped[i] ^= 0x01
		assert.NotEqual(t, sum, Checksum(flipped), "flip at byte %d", i)
	}
}

func BenchmarkChecksum(b *testing.B) {
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i)
	}

	b.ResetTimer()
	for b.Loop() {
		Checksum(payload)
	}
}
