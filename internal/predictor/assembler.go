package predictor

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// ModelVersion is stamped on every prediction so stored predictions can be
// traced to the formula revision that produced them.
const ModelVersion = "tsr-v2.1.0"

// Assembler orchestrates rating, projection, confidence, and edge
// computation for one matchup and packages the result with versioning
// metadata.
type Assembler struct {
	registry     *Registry
	strictPreset bool
	logger       *logrus.Logger
}

// NewAssembler creates an assembler. With strictPreset set, unknown or
// out-of-range presets refuse to run instead of falling back to balanced.
func NewAssembler(registry *Registry, strictPreset bool, logger *logrus.Logger) *Assembler {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Assembler{
		registry:     registry,
		strictPreset: strictPreset,
		logger:       logger,
	}
}

// Predict produces one prediction for a matchup from a standings snapshot.
// Both teams must resolve by stable ID in the snapshot; a missing team is a
// MissingStandingsError for this matchup only, never a silent zeroed record.
func (a *Assembler) Predict(matchup *models.Matchup, snapshot *models.StandingsSnapshot, avg models.LeagueAverages, line *models.MarketLine, presetName string) (*models.Prediction, error) {
	preset, err := a.resolvePreset(presetName)
	if err != nil {
		return nil, err
	}

	home, ok := snapshot.Find(matchup.HomeTeamID)
	if !ok {
		return nil, &models.MissingStandingsError{TeamID: matchup.HomeTeamID, Season: snapshot.Season, Week: snapshot.Week}
	}
	away, ok := snapshot.Find(matchup.AwayTeamID)
	if !ok {
		return nil, &models.MissingStandingsError{TeamID: matchup.AwayTeamID, Season: snapshot.Season, Week: snapshot.Week}
	}

	homeRating := Rate(home, true, avg, preset)
	awayRating := Rate(away, false, avg, preset)

	projection := Project(homeRating, awayRating, home, away, avg, preset)
	confidence := Confidence(projection.Spread)
	edge := ComputeEdge(projection.Spread, projection.Total, line)

	return &models.Prediction{
		ID:           uuid.New(),
		MatchupID:    matchup.ID,
		Season:       matchup.Season,
		Week:         matchup.Week,
		HomeTeamID:   matchup.HomeTeamID,
		AwayTeamID:   matchup.AwayTeamID,
		HomeRating:   homeRating,
		AwayRating:   awayRating,
		Spread:       projection.Spread,
		Total:        projection.Total,
		Score:        projection.Score,
		Confidence:   confidence,
		Tier:         Recommend(confidence, edge),
		Edge:         edge,
		MarketLine:   line,
		Preset:       preset.Name,
		ModelVersion: ModelVersion,
		PredictedAt:  time.Now().UTC(),
	}, nil
}

func (a *Assembler) resolvePreset(name string) (WeightPreset, error) {
	if a.strictPreset {
		preset, err := a.registry.GetStrict(name)
		if err != nil {
			return WeightPreset{}, err
		}
		if violations := Validate(preset); len(violations) > 0 {
			return WeightPreset{}, &models.InvalidPresetError{Name: name, Violations: violations}
		}
		return preset, nil
	}

	preset, err := a.registry.GetStrict(name)
	if err != nil {
		a.logger.WithField("preset", name).Warn("Unknown preset, falling back to balanced")
		return a.registry.GetOrDefault(name), nil
	}
	return preset, nil
}
