package circls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDecodeIrRoundTrip(t *testing.T) {
	frame := IrFrame{FC: 0x5, Data: 0xa7}
	buf := EncodeIr(frame)
	assert.Len(t, buf, IrBufferLen)

	got, err := DecodeIr(buf)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestDecodeIrBadMagic(t *testing.T) {
	buf := make([]byte, IrBufferLen)
	_, err := DecodeIr(buf)
	require.Error(t, err)
	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, IrBadMagic, k)
}

func TestDecodeIrBadLength(t *testing.T) {
	_, err := DecodeIr(make([]byte, 10))
	require.Error(t, err)
	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, BadLength, k)
}

func TestEncodeDecodeIrRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fc := byte(rapid.IntRange(0, 15).Draw(t, "fc"))
		data := byte(rapid.IntRange(0, 255).Draw(t, "data"))
		frame := IrFrame{FC: fc, Data: data}

		buf := EncodeIr(frame)
		got, err := DecodeIr(buf)
		require.NoError(t, err)
		assert.Equal(t, frame, got)
	})
}

func TestDecodeIrToleratesTrailingPulseNoise(t *testing.T) {
	// Flipping a bit-1 window's off slot (index 3 of 4) from 0 to 1 keeps
	// its popcount above threshold; a bit-0 window's popcount (1) stays
	// under threshold (3) regardless of which single slot flips. So
	// flipping every window's last slot is safe for both bit values.
	frame := IrFrame{FC: 0x3, Data: 0x5c}
	buf := EncodeIr(frame)
	for i := pulsesPerBit - 1; i < len(buf); i += pulsesPerBit {
		buf[i] ^= 1
	}
	got, err := DecodeIr(buf)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}
