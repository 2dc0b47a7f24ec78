package predictor

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixtureSnapshot() *models.StandingsSnapshot {
	home := *strongRecord()
	home.TeamID = "KC"

	away := *strongRecord()
	away.TeamID = "BUF"
	away.PointsFor = 120

	return &models.StandingsSnapshot{Season: 2024, Week: 5, Records: []models.StandingsRecord{home, away}}
}

func fixtureMatchup() *models.Matchup {
	return &models.Matchup{
		ID:         "2024-06-KC-BUF",
		Season:     2024,
		Week:       6,
		HomeTeamID: "KC",
		AwayTeamID: "BUF",
	}
}

func TestPredictProducesCompletePrediction(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), false, quietLogger())
	snapshot := fixtureSnapshot()
	line := &models.MarketLine{MatchupID: "2024-06-KC-BUF", Spread: -3, Total: 44}

	pred, err := assembler.Predict(fixtureMatchup(), snapshot, leagueAvg(), line, "balanced")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-KC-BUF", pred.MatchupID)
	assert.Equal(t, "balanced", pred.Preset)
	assert.Equal(t, ModelVersion, pred.ModelVersion)
	assert.GreaterOrEqual(t, pred.Confidence, 50)
	assert.LessOrEqual(t, pred.Confidence, 95)
	assert.NotNil(t, pred.Edge)
	assert.False(t, pred.PredictedAt.IsZero())
}

func TestPredictWithoutLineAvoids(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), false, quietLogger())

	pred, err := assembler.Predict(fixtureMatchup(), fixtureSnapshot(), leagueAvg(), nil, "balanced")
	require.NoError(t, err)

	assert.Nil(t, pred.Edge)
	assert.Equal(t, models.TierAvoid, pred.Tier)
}

func TestPredictDeterministic(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), false, quietLogger())
	snapshot := fixtureSnapshot()

	first, err := assembler.Predict(fixtureMatchup(), snapshot, leagueAvg(), nil, "balanced")
	require.NoError(t, err)
	second, err := assembler.Predict(fixtureMatchup(), snapshot, leagueAvg(), nil, "balanced")
	require.NoError(t, err)

	assert.Equal(t, first.Spread, second.Spread)
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestPredictMissingTeamFails(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), false, quietLogger())

	matchup := fixtureMatchup()
	matchup.AwayTeamID = "XYZ"

	_, err := assembler.Predict(matchup, fixtureSnapshot(), leagueAvg(), nil, "balanced")
	require.Error(t, err)

	var missing *models.MissingStandingsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "XYZ", missing.TeamID)
}

func TestPredictLenientFallsBackToBalanced(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), false, quietLogger())

	pred, err := assembler.Predict(fixtureMatchup(), fixtureSnapshot(), leagueAvg(), nil, "no-such-preset")
	require.NoError(t, err)
	assert.Equal(t, "balanced", pred.Preset)
}

func TestPredictStrictRejectsUnknownPreset(t *testing.T) {
	assembler := NewAssembler(NewRegistry(), true, quietLogger())

	_, err := assembler.Predict(fixtureMatchup(), fixtureSnapshot(), leagueAvg(), nil, "no-such-preset")
	require.Error(t, err)

	var presetErr *models.InvalidPresetError
	assert.ErrorAs(t, err, &presetErr)
}
