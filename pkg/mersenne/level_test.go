package mersenne

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
)

func TestSnapWithLegacyBelowFloor(t *testing.T) {
	// Non-legacy: anything below 13 snaps up to 13.
	v, err := SnapWithLegacy(5, false)
	require.NoError(t, err)
	assert.Equal(t, 13, v)

	// Legacy: floor drops to the table minimum (5).
	v, err = SnapWithLegacy(5, true)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestSnapBelowMinimumFails(t *testing.T) {
	_, err := SnapWithLegacy(4, true)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSnapAboveMaximumFails(t *testing.T) {
	_, err := SnapWithLegacy(Max()+1, true)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSnapExactTableMember(t *testing.T) {
	v, err := SnapWithLegacy(127, false)
	require.NoError(t, err)
	assert.Equal(t, 127, v)
}

func TestSnapRoundsUpToNextMember(t *testing.T) {
	v, err := SnapWithLegacy(20, false)
	require.NoError(t, err)
	assert.Equal(t, 31, v)
}

func TestESnapProperty(t *testing.T) {
	// For every integer v in [5, 200], outside legacy mode, the post-snap
	// level equals the smallest table member >= max(v, 13).
	table := Table()

	for v := Min(); v <= 200; v++ {
		got, err := SnapWithLegacy(v, false)
		require.NoError(t, err)

		want := 0
		floor := v
		if floor < 13 {
			floor = 13
		}
		for _, e := range table {
			if e >= floor {
				want = e
				break
			}
		}
		assert.Equal(t, want, got, "v=%d", v)
	}
}

func TestDefaultLevel(t *testing.T) {
	SetLegacyMode(false)
	assert.Equal(t, 13, DefaultLevel())

	SetLegacyMode(true)
	assert.Equal(t, 7, DefaultLevel())
	SetLegacyMode(false)
}

func TestPrimeIsMersenne(t *testing.T) {
	p := Prime(13)
	// 2^13 - 1 = 8191
	assert.True(t, p.Equal(bigint.FromInt64(8191)))
}

func TestInferLevelMatchesSplitLevel(t *testing.T) {
	// A y-value that fits under level 13's prime but not under 7's should
	// infer back to 13 in non-legacy mode.
	p13 := Prime(13)
	y := p13.Sub(bigint.One) // p13 - 1, the largest valid field element

	level, p, err := InferLevel(y)
	require.NoError(t, err)
	assert.Equal(t, 13, level)
	assert.True(t, p.Equal(p13))
}

func TestInferLevelSmallSecret(t *testing.T) {
	// 200 needs only one byte, but it exceeds 2^7 - 1 = 127, so it infers
	// 13 rather than 7 or 5.
	level, _, err := InferLevel(bigint.FromInt64(200))
	require.NoError(t, err)
	assert.Equal(t, 13, level)
}
