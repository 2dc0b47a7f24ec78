package models

import "time"

// MatchupStatus represents the lifecycle of a scheduled matchup.
type MatchupStatus string

const (
	MatchupStatusScheduled  MatchupStatus = "scheduled"
	MatchupStatusInProgress MatchupStatus = "in_progress"
	MatchupStatusFinal      MatchupStatus = "final"
)

// Matchup is one scheduled game supplied by the schedule/results source.
type Matchup struct {
	ID         string        `db:"id" json:"id" validate:"required"`
	Season     int           `db:"season" json:"season" validate:"required"`
	Week       int           `db:"week" json:"week" validate:"gte=1"`
	HomeTeamID string        `db:"home_team_id" json:"homeTeamId" validate:"required"`
	AwayTeamID string        `db:"away_team_id" json:"awayTeamId" validate:"required"`
	Kickoff    time.Time     `db:"kickoff" json:"kickoff"`
	Status     MatchupStatus `db:"status" json:"status"`
	HomeScore  *int          `db:"home_score" json:"homeScore,omitempty"`
	AwayScore  *int          `db:"away_score" json:"awayScore,omitempty"`
}

// IsFinal reports whether the matchup has a known final score.
func (m *Matchup) IsFinal() bool {
	return m.Status == MatchupStatusFinal && m.HomeScore != nil && m.AwayScore != nil
}

// ActualSpread returns the home-relative final margin. Only meaningful once
// the matchup is final.
func (m *Matchup) ActualSpread() float64 {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0
	}
	return float64(*m.HomeScore - *m.AwayScore)
}

// ActualTotal returns the combined final score.
func (m *Matchup) ActualTotal() float64 {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0
	}
	return float64(*m.HomeScore + *m.AwayScore)
}

// MarketLine is an external sportsbook benchmark for one matchup. Spread is
// home-relative: positive means the market favors the home team.
type MarketLine struct {
	MatchupID string  `db:"matchup_id" json:"matchupId"`
	Spread    float64 `db:"spread" json:"spread"`
	Total     float64 `db:"total" json:"total"`
}
