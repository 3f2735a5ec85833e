package circls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCRC16CCITTEmpty(t *testing.T) {
	assert.Equal(t, uint16(crcInit), CRC16CCITT(nil))
}

func TestCRC16CCITTKnownVector(t *testing.T) {
	// "123456789" is the standard CRC-CCITT (0xFFFF init) check string,
	// with expected residue 0x29B1.
	got := CRC16CCITT([]byte("123456789"))
	assert.Equal(t, uint16(0x29B1), got)
}

func TestCRC16CCITTDetectsSingleBitFlip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 64).Draw(t, "n")
		buf := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "buf")
		bitIdx := rapid.IntRange(0, n*8-1).Draw(t, "bitIdx")

		want := CRC16CCITT(buf)

		flipped := append([]byte(nil), buf...)
		flipped[bitIdx/8] ^= 1 << uint(bitIdx%8)

		got := CRC16CCITT(flipped)
		assert.NotEqual(t, want, got, "single-bit corruption must change the FCS")
	})
}
