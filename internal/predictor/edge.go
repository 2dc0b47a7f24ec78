package predictor

import (
	"math"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Tier thresholds, evaluated in order; first match wins.
const (
	strongBetConfidence = 70
	strongBetEdge       = 4.0
	valueBetConfidence  = 65
	valueBetEdge        = 2.5
	waitConfidence      = 55
	waitEdge            = 1.5
)

// ComputeEdge returns predicted-minus-market deltas for spread and total.
// Returns nil when no market line was supplied: without a benchmark there
// is no edge to claim.
func ComputeEdge(spread, total float64, line *models.MarketLine) *models.Edge {
	if line == nil {
		return nil
	}
	return &models.Edge{
		Spread: spread - line.Spread,
		Total:  total - line.Total,
	}
}

// Recommend classifies a (confidence, edge) pair into exactly one tier.
// Pure and stateless; a nil edge can never rise above avoid.
func Recommend(confidence int, edge *models.Edge) models.RecommendationTier {
	if edge == nil {
		return models.TierAvoid
	}

	spreadEdge := math.Abs(edge.Spread)
	totalEdge := math.Abs(edge.Total)

	switch {
	case confidence >= strongBetConfidence && (spreadEdge >= strongBetEdge || totalEdge >= strongBetEdge):
		return models.TierStrongBet
	case confidence >= valueBetConfidence && (spreadEdge >= valueBetEdge || totalEdge >= valueBetEdge):
		return models.TierValueBet
	case confidence >= waitConfidence && (spreadEdge >= waitEdge || totalEdge >= waitEdge):
		return models.TierWait
	default:
		return models.TierAvoid
	}
}
