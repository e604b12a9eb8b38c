package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateScore_FixedPoints(t *testing.T) {
	assert.Equal(t, 0, CalculateScore(0, 0, 0))
	assert.Equal(t, 100, CalculateScore(10, 10, 5))
}

func TestCalculateScore_Formula(t *testing.T) {
	// round(0.4*70 + 0.4*60 + 0.2*40) = round(28+24+8) = 60
	assert.Equal(t, 60, CalculateScore(7, 6, 2))

	// defaults: pain 5, function 5, no complaints
	assert.Equal(t, 40, CalculateScore(5, 5, 0))
}

func TestCalculateScore_ComplaintCountCappedAtFive(t *testing.T) {
	require.Equal(t, CalculateScore(3, 3, 5), CalculateScore(3, 3, 12))
}

func TestCalculateScore_InDomainRange(t *testing.T) {
	for pain := 0; pain <= 10; pain++ {
		for function := 0; function <= 10; function++ {
			for count := 0; count <= 8; count++ {
				score := CalculateScore(pain, function, count)
				require.GreaterOrEqual(t, score, 0)
				require.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestCalculateScore_OutOfDomainProcessedAsGiven(t *testing.T) {
	// not clamped, not rejected
	assert.Equal(t, 120, CalculateScore(15, 15, 0))
	assert.Equal(t, -80, CalculateScore(-10, -10, 0))
}

func TestBandFor_Boundaries(t *testing.T) {
	assert.Equal(t, BandMild, BandFor(33))
	assert.Equal(t, BandModerate, BandFor(34))
	assert.Equal(t, BandModerate, BandFor(66))
	assert.Equal(t, BandPronounced, BandFor(67))
}

func TestBandFor_OutOfRangeStillClassified(t *testing.T) {
	assert.Equal(t, BandMild, BandFor(-5))
	assert.Equal(t, BandPronounced, BandFor(140))
}

func TestBand_CarriesColorToken(t *testing.T) {
	assert.NotEmpty(t, BandMild.Color)
	assert.NotEmpty(t, BandModerate.Color)
	assert.NotEmpty(t, BandPronounced.Color)
}
