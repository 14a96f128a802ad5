package shamir

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultkeep/mersenne-sss/pkg/bigint"
)

func TestShareSetWireRoundTrip(t *testing.T) {
	points := []Point{
		NewPoint(bigint.FromInt64(1), bigint.FromInt64(111)),
		NewPoint(bigint.FromInt64(2), bigint.FromInt64(222)),
		NewPoint(bigint.FromInt64(3), bigint.FromInt64(333)),
	}
	ss := newShareSet(points, nil)

	parsed, err := ParseShareSet(ss.Format())
	require.NoError(t, err)

	assert.ElementsMatch(t, ss.Points, parsed.Points)
	assert.Equal(t, uuid.Nil, parsed.OperationID)
}

func TestParseShareSetTolerantOfNewlinesAndBlankLines(t *testing.T) {
	text := "01-6F\r\n\r\n02-DE\n\n03-15\n"
	ss, err := ParseShareSet(text)
	require.NoError(t, err)
	assert.Len(t, ss.Points, 3)
}

func TestParseShareSetEmptyFails(t *testing.T) {
	_, err := ParseShareSet("   \n\n  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseShareStringsRejectsMalformed(t *testing.T) {
	_, err := ParseShareStrings([]string{"01-02", "not-a-share-!!"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFingerprintStableUnderReordering(t *testing.T) {
	a := []Point{
		NewPoint(bigint.FromInt64(1), bigint.FromInt64(111)),
		NewPoint(bigint.FromInt64(2), bigint.FromInt64(222)),
	}
	b := []Point{a[1], a[0]}

	ssA := &ShareSet{Points: a}
	ssB := &ShareSet{Points: b}

	assert.Equal(t, ssA.Fingerprint(), ssB.Fingerprint())
}

func TestFingerprintDiffersOnTamperedShare(t *testing.T) {
	a := &ShareSet{Points: []Point{
		NewPoint(bigint.FromInt64(1), bigint.FromInt64(111)),
	}}
	b := &ShareSet{Points: []Point{
		NewPoint(bigint.FromInt64(1), bigint.FromInt64(112)),
	}}

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
