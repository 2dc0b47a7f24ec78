package predictor

import "math"

// Confidence bounds and slope. The 2.5 points-per-spread-point slope is a
// calibrated constant mirroring empirical NFL win-probability curves.
const (
	minConfidence      = 50
	maxConfidence      = 95
	confidencePerPoint = 2.5
)

// Confidence maps a projected spread magnitude to a bounded
// win-probability-like score. Never below a coin-flip floor of 50, never
// above 95. Scales with the spread actually projected, not the raw rating
// gap.
func Confidence(spread float64) int {
	conf := int(math.Round(float64(minConfidence) + math.Abs(spread)*confidencePerPoint))
	if conf < minConfidence {
		return minConfidence
	}
	if conf > maxConfidence {
		return maxConfidence
	}
	return conf
}
