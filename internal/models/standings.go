package models

// StandingsRecord holds one team's cumulative record as of a season/week
// snapshot. Teams are resolved by stable TeamID only; name matching is the
// ingestion layer's job and never happens here.
type StandingsRecord struct {
	TeamID   string `db:"team_id" json:"teamId" validate:"required"`
	TeamName string `db:"team_name" json:"teamName"`

	Wins   int `db:"wins" json:"wins" validate:"gte=0"`
	Losses int `db:"losses" json:"losses" validate:"gte=0"`
	Ties   int `db:"ties" json:"ties" validate:"gte=0"`

	PointsFor     int `db:"points_for" json:"pointsFor" validate:"gte=0"`
	PointsAgainst int `db:"points_against" json:"pointsAgainst" validate:"gte=0"`

	HomeWins   int `db:"home_wins" json:"homeWins" validate:"gte=0"`
	HomeLosses int `db:"home_losses" json:"homeLosses" validate:"gte=0"`
	RoadWins   int `db:"road_wins" json:"roadWins" validate:"gte=0"`
	RoadLosses int `db:"road_losses" json:"roadLosses" validate:"gte=0"`

	ConferenceWins   int `db:"conference_wins" json:"conferenceWins" validate:"gte=0"`
	ConferenceLosses int `db:"conference_losses" json:"conferenceLosses" validate:"gte=0"`

	LastFiveWins   int `db:"last_five_wins" json:"lastFiveWins" validate:"gte=0"`
	LastFiveLosses int `db:"last_five_losses" json:"lastFiveLosses" validate:"gte=0"`
}

// GamesPlayed returns total games in the record. Zero is legal for week 0;
// downstream math must degrade to neutral values instead of dividing.
func (r *StandingsRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// WinRate returns the season win rate, or 0 when no games have been played.
func (r *StandingsRecord) WinRate() float64 {
	gp := r.GamesPlayed()
	if gp == 0 {
		return 0
	}
	return float64(r.Wins) / float64(gp)
}

// PointsForPerGame returns average points scored per game.
func (r *StandingsRecord) PointsForPerGame() float64 {
	gp := r.GamesPlayed()
	if gp == 0 {
		return 0
	}
	return float64(r.PointsFor) / float64(gp)
}

// PointsAgainstPerGame returns average points allowed per game.
func (r *StandingsRecord) PointsAgainstPerGame() float64 {
	gp := r.GamesPlayed()
	if gp == 0 {
		return 0
	}
	return float64(r.PointsAgainst) / float64(gp)
}

// StandingsSnapshot is one immutable standings table keyed by (season, week).
// Week is the last completed week the records reflect.
type StandingsSnapshot struct {
	Season  int               `json:"season"`
	Week    int               `json:"week"`
	Records []StandingsRecord `json:"records"`
}

// Find resolves a record by stable team ID.
func (s *StandingsSnapshot) Find(teamID string) (*StandingsRecord, bool) {
	for i := range s.Records {
		if s.Records[i].TeamID == teamID {
			return &s.Records[i], true
		}
	}
	return nil, false
}

// LeagueAverages holds per-game league baselines derived from one snapshot.
// Copied by value into every rating computation; never mutated after
// derivation.
type LeagueAverages struct {
	PointsForPerGame     float64 `json:"pointsForPerGame"`
	PointsAgainstPerGame float64 `json:"pointsAgainstPerGame"`
	NetPointsPerGame     float64 `json:"netPointsPerGame"`
}

// ComputeLeagueAverages folds a snapshot into league-wide per-game baselines.
// An empty snapshot (week 0) yields zeroed averages.
func ComputeLeagueAverages(snapshot *StandingsSnapshot) LeagueAverages {
	totalGames := 0
	totalFor := 0
	totalAgainst := 0
	for i := range snapshot.Records {
		rec := &snapshot.Records[i]
		totalGames += rec.GamesPlayed()
		totalFor += rec.PointsFor
		totalAgainst += rec.PointsAgainst
	}
	if totalGames == 0 {
		return LeagueAverages{}
	}

	avg := LeagueAverages{
		PointsForPerGame:     float64(totalFor) / float64(totalGames),
		PointsAgainstPerGame: float64(totalAgainst) / float64(totalGames),
	}
	avg.NetPointsPerGame = avg.PointsForPerGame - avg.PointsAgainstPerGame
	return avg
}
