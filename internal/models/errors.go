package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrSnapshotNotFound = errors.New("standings snapshot not found")
	ErrMatchupNotFinal  = errors.New("matchup has no final score")
	ErrLineNotFound     = errors.New("market line not found")
	ErrNotFound         = errors.New("record not found")
)

// MissingStandingsError reports a team that could not be resolved in the
// supplied snapshot. Fatal to that matchup's prediction only, never to the
// batch.
type MissingStandingsError struct {
	TeamID string
	Season int
	Week   int
}

func (e *MissingStandingsError) Error() string {
	return fmt.Sprintf("missing standings for team %q in season %d week %d", e.TeamID, e.Season, e.Week)
}

// MissingSnapshotError reports an entire absent week snapshot. Fatal to that
// week only; the backtest skips the week and proceeds.
type MissingSnapshotError struct {
	Season int
	Week   int
	Err    error
}

func (e *MissingSnapshotError) Error() string {
	return fmt.Sprintf("missing standings snapshot for season %d week %d", e.Season, e.Week)
}

func (e *MissingSnapshotError) Unwrap() error {
	return e.Err
}

// InvalidPresetError reports a preset lookup or validation failure. Advisory
// unless the caller opted into strict validation.
type InvalidPresetError struct {
	Name       string
	Violations []string
}

func (e *InvalidPresetError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("unknown preset %q", e.Name)
	}
	return fmt.Sprintf("invalid preset %q: %d weight(s) out of range", e.Name, len(e.Violations))
}
