package circls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestScramblerPair(t require.TestingT) (*Scrambler, *Scrambler) {
	tx, err := NewScrambler(DefaultSeed, DefaultSeedLen, 0)
	require.NoError(t, err)
	rx, err := NewScrambler(DefaultSeed, DefaultSeedLen, 0)
	require.NoError(t, err)
	return tx, rx
}

func TestFrameParseEmptyPayload(t *testing.T) {
	tx, rx := newTestScramblerPair(t)
	buf := Frame(tx, 1, nil)
	seq, payload, err := Parse(rx, buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), seq)
	assert.Empty(t, payload)
}

func TestFrameParseSingleBytePayload(t *testing.T) {
	tx, rx := newTestScramblerPair(t)
	buf := Frame(tx, 42, []byte{0xaa})
	seq, payload, err := Parse(rx, buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), seq)
	assert.Equal(t, []byte{0xaa}, payload)
}

func TestFrameParseMaxDataPayload(t *testing.T) {
	tx, rx := newTestScramblerPair(t)
	payload := make([]byte, 251)
	for i := range payload {
		payload[i] = byte(i)
	}
	buf := Frame(tx, 7, payload)
	seq, got, err := Parse(rx, buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), seq)
	assert.Equal(t, payload, got)
}

func TestFrameParseStraddlesCodewordBoundary(t *testing.T) {
	tx, rx := newTestScramblerPair(t)
	payload := make([]byte, 252)
	for i := range payload {
		payload[i] = byte(i * 3)
	}
	buf := Frame(tx, 9, payload)
	seq, got, err := Parse(rx, buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), seq)
	assert.Equal(t, payload, got)
}

func TestParseDetectsCorruptedSymbol(t *testing.T) {
	tx, rx := newTestScramblerPair(t)
	buf := Frame(tx, 3, []byte("corrupt me"))
	for i := 0; i < 3; i++ {
		buf[i] ^= 0xff
	}
	_, _, err := Parse(rx, buf)
	require.Error(t, err)
	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, RsUncorrectable, k)
}

func TestFrameParseRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tx, rx := newTestScramblerPair(t)
		seq := byte(rapid.IntRange(0, 255).Draw(t, "seq"))
		n := rapid.IntRange(0, 2*MaxData).Draw(t, "n")
		payload := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "payload")

		buf := Frame(tx, seq, payload)
		gotSeq, gotPayload, err := Parse(rx, buf)
		require.NoError(t, err)
		assert.Equal(t, seq, gotSeq)
		assert.Equal(t, payload, gotPayload)
	})
}
