package circls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// runsFromSymbols run-length compresses a raw symbol sequence the way a
// perfect (noise-free) detector would, with every symbol exactly w
// pixels wide.
func runsFromSymbols(symbols []Symbol, w int) []Run {
	runs := make([]Run, len(symbols))
	for i, s := range symbols {
		runs[i] = Run{Tag: s, Width: w}
	}
	return runs
}

func TestModulateDemodulateRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox")
	symbols := Modulate(data)
	runs := runsFromSymbols(symbols, 16)

	got, err := Demodulate(runs)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDemodulateNoSyncError(t *testing.T) {
	runs := runsFromSymbols([]Symbol{Red, Green, Blue, Yellow, Red, Green, Blue, Yellow}, 10)
	_, err := Demodulate(runs)
	require.Error(t, err)
	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, NoSync, k)
}

func TestDemodulateEmptyError(t *testing.T) {
	runs := runsFromSymbols([]Symbol{Yellow, Dark, Yellow}, 10)
	_, err := Demodulate(runs)
	require.Error(t, err)
	k, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, Empty, k)
}

func TestDemodulateDropsPartialTrailingByte(t *testing.T) {
	symbols := append([]Symbol{}, SyncPattern[:]...)
	symbols = append(symbols, Red, Green, Blue) // 3 data symbols = 6 bits, not a full byte
	runs := runsFromSymbols(symbols, 16)

	got, err := Demodulate(runs)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestModulateDemodulateRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 256).Draw(t, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "data")
		w := rapid.IntRange(16, 80).Draw(t, "w")

		symbols := Modulate(data)
		runs := runsFromSymbols(symbols, w)

		got, err := Demodulate(runs)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}
