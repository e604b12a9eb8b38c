package note

import "math"

// CalculateScore derives the 0-100 severity score from the current pain and
// function ratings (0-10 each) and the number of selected complaints. Pain
// and function each contribute 40%, the complaint count (capped at five)
// the remaining 20%. The result is rounded half away from zero.
//
// The weights and normalization bases are fixed: changing them would break
// comparability with scores already persisted on historical sessions.
// Out-of-range inputs are processed as given, not rejected.
func CalculateScore(pain, function, complaintsCount int) int {
	painNorm := float64(pain) / 10 * 100
	funcNorm := float64(function) / 10 * 100
	count := complaintsCount
	if count > 5 {
		count = 5
	}
	complaintNorm := float64(count) / 5 * 100
	return int(math.Round(0.4*painNorm + 0.4*funcNorm + 0.2*complaintNorm))
}

// Band is the qualitative classification of a severity score. Color is an
// opaque presentation token passed through to whoever renders the band.
type Band struct {
	Label string
	Color string
}

var (
	BandMild       = Band{Label: "mild", Color: "#9ae6b4"}
	BandModerate   = Band{Label: "moderate", Color: "#faf089"}
	BandPronounced = Band{Label: "pronounced", Color: "#feb2b2"}
)

// BandFor classifies a score into one of the three severity bands. The
// thresholds (34 and 67) are part of the documented contract; scores outside
// [0,100] are still classified.
func BandFor(score int) Band {
	switch {
	case score < 34:
		return BandMild
	case score < 67:
		return BandModerate
	default:
		return BandPronounced
	}
}
