package models

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationTier classifies the betting opportunity for one prediction.
type RecommendationTier string

const (
	TierStrongBet RecommendationTier = "strong_bet"
	TierValueBet  RecommendationTier = "value_bet"
	TierWait      RecommendationTier = "wait"
	TierAvoid     RecommendationTier = "avoid"
)

// PredictedScore is the projected exact final score.
type PredictedScore struct {
	Home int `db:"home" json:"home"`
	Away int `db:"away" json:"away"`
}

// Edge is the predicted-minus-market delta for spread and total. Present on
// a prediction only when a market line was supplied.
type Edge struct {
	Spread float64 `db:"spread" json:"spread"`
	Total  float64 `db:"total" json:"total"`
}

// Prediction is one projected outcome for a matchup under a given preset.
// Immutable once produced; re-running with fresher standings supersedes it
// rather than mutating it.
type Prediction struct {
	ID           uuid.UUID          `db:"id" json:"id"`
	MatchupID    string             `db:"matchup_id" json:"matchupId" validate:"required"`
	Season       int                `db:"season" json:"season"`
	Week         int                `db:"week" json:"week"`
	HomeTeamID   string             `db:"home_team_id" json:"homeTeamId"`
	AwayTeamID   string             `db:"away_team_id" json:"awayTeamId"`
	HomeRating   float64            `db:"home_rating" json:"homeRating"`
	AwayRating   float64            `db:"away_rating" json:"awayRating"`
	Spread       float64            `db:"spread" json:"predictedSpread"`
	Total        float64            `db:"total" json:"predictedTotal"`
	Score        PredictedScore     `db:"-" json:"predictedScore"`
	Confidence   int                `db:"confidence" json:"confidence" validate:"gte=50,lte=95"`
	Tier         RecommendationTier `db:"tier" json:"recommendation"`
	Edge         *Edge              `db:"-" json:"edge,omitempty"`
	MarketLine   *MarketLine        `db:"-" json:"marketLine,omitempty"`
	Preset       string             `db:"preset" json:"preset"`
	ModelVersion string             `db:"model_version" json:"modelVersion"`
	PredictedAt  time.Time          `db:"predicted_at" json:"predictedAt"`
}

// HomeFavored reports whether the projection favors the home team.
func (p *Prediction) HomeFavored() bool {
	return p.Spread > 0
}
