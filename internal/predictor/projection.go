package predictor

import (
	"math"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Calibrated constants. The rating-to-spread scale and total dampening were
// tuned empirically against historical seasons; treat them as fixed rather
// than re-deriving.
const (
	spreadScale    = 0.20
	totalDampening = 0.95
	defaultTotal   = 45.0

	minTotal = 30.0
	maxTotal = 70.0
	minScore = 3
	maxScore = 60
)

// Projection is the projected outcome of one matchup.
type Projection struct {
	Spread float64
	Total  float64
	Score  models.PredictedScore
}

// Project combines both teams' ratings and records into a predicted spread,
// total, and exact score. Spread is home-relative: positive favors home.
func Project(homeRating, awayRating float64, home, away *models.StandingsRecord, avg models.LeagueAverages, preset WeightPreset) Projection {
	spread := (homeRating - awayRating) * spreadScale * preset.RegressionFactor
	total := projectTotal(home, away, avg, preset)

	return Projection{
		Spread: spread,
		Total:  total,
		Score:  splitScore(total, spread, preset.VolatilityMultiplier),
	}
}

// projectTotal cross-multiplies each side's offensive efficiency with the
// opponent's defensive efficiency, both as ratios to league average, then
// dampens the sum against systematic over-prediction.
func projectTotal(home, away *models.StandingsRecord, avg models.LeagueAverages, preset WeightPreset) float64 {
	if home.GamesPlayed() == 0 || away.GamesPlayed() == 0 {
		return defaultTotal
	}
	if avg.PointsForPerGame == 0 || avg.PointsAgainstPerGame == 0 {
		return defaultTotal
	}

	homeOff := home.PointsForPerGame() / avg.PointsForPerGame
	homeDef := home.PointsAgainstPerGame() / avg.PointsAgainstPerGame
	awayOff := away.PointsForPerGame() / avg.PointsForPerGame
	awayDef := away.PointsAgainstPerGame() / avg.PointsAgainstPerGame

	expectedHome := homeOff * awayDef * avg.PointsForPerGame
	expectedAway := awayOff * homeDef * avg.PointsForPerGame
	raw := expectedHome + expectedAway

	// TotalRecencyWeight blends the team-derived total with the league
	// baseline: 1.0 trusts current-season scoring fully, 0 pins the total
	// to the league average.
	baseline := avg.PointsForPerGame * 2
	blended := baseline + (raw-baseline)*preset.TotalRecencyWeight

	total := blended*totalDampening + preset.TotalBoost
	return clampFloat(total, minTotal, maxTotal)
}

// splitScore divides the total evenly, shifts each side by half the spread,
// and separates the scores further in proportion to (volatility - 1).
func splitScore(total, spread, volatility float64) models.PredictedScore {
	half := total / 2
	shift := spread / 2
	shift += shift * (volatility - 1)

	homeScore := int(math.Round(half + shift))
	awayScore := int(math.Round(half - shift))

	return models.PredictedScore{
		Home: clampInt(homeScore, minScore, maxScore),
		Away: clampInt(awayScore, minScore, maxScore),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
