package predictor

import (
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Rate computes the Team Strength Rating for one team: six additive
// components, each a preset weight times a normalized differential against
// the league baseline. The result is an unbounded intermediate signal, not a
// point value; extreme ratings are dampened downstream by the projector.
func Rate(rec *models.StandingsRecord, isHome bool, avg models.LeagueAverages, preset WeightPreset) float64 {
	gp := rec.GamesPlayed()
	if gp == 0 {
		return 0
	}

	rating := 0.0

	netPerGame := rec.PointsForPerGame() - rec.PointsAgainstPerGame()
	rating += preset.NetPointsWeight * (netPerGame - avg.NetPointsPerGame)

	rating += preset.MomentumWeight * (lastFiveRate(rec) - rec.WinRate())

	rating += preset.ConferenceWeight * (conferenceRate(rec) - 0.5)

	// Home-field edge only applies to the home side, and only once both
	// splits have at least one game.
	if isHome && rec.HomeWins+rec.HomeLosses > 0 && rec.RoadWins+rec.RoadLosses > 0 {
		homeRate := float64(rec.HomeWins) / float64(rec.HomeWins+rec.HomeLosses)
		roadRate := float64(rec.RoadWins) / float64(rec.RoadWins+rec.RoadLosses)
		rating += preset.HomeFieldWeight * (homeRate - roadRate)
	}

	rating += preset.OffenseWeight * (rec.PointsForPerGame() - avg.PointsForPerGame)

	// Inverted: allowing fewer points than the league average raises the
	// rating.
	rating += preset.DefenseWeight * (avg.PointsAgainstPerGame - rec.PointsAgainstPerGame())

	return rating
}

// lastFiveRate returns the trailing-5-game win rate, or the season win rate
// when no trailing games exist (zeroing the momentum component).
func lastFiveRate(rec *models.StandingsRecord) float64 {
	games := rec.LastFiveWins + rec.LastFiveLosses
	if games == 0 {
		return rec.WinRate()
	}
	return float64(rec.LastFiveWins) / float64(games)
}

// conferenceRate returns the conference win rate, treating no conference
// games as exactly .500 (zeroing the conference component).
func conferenceRate(rec *models.StandingsRecord) float64 {
	games := rec.ConferenceWins + rec.ConferenceLosses
	if games == 0 {
		return 0.5
	}
	return float64(rec.ConferenceWins) / float64(games)
}
