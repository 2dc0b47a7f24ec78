package backtest

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/config"
)

// Config holds the parameters of one backtest run.
type Config struct {
	Season       int
	StartWeek    int
	EndWeek      int
	Preset       string
	StrictPreset bool
	Workers      int
	OutputPath   string
}

// FromConfig converts app config to a backtest run config
func FromConfig(cfg *config.BacktestConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("backtest config is required")
	}

	bt := Config{
		Season:       cfg.Season,
		StartWeek:    cfg.StartWeek,
		EndWeek:      cfg.EndWeek,
		Preset:       cfg.Preset,
		StrictPreset: cfg.StrictPreset,
		Workers:      cfg.Workers,
		OutputPath:   cfg.OutputPath,
	}
	if bt.Workers <= 0 {
		bt.Workers = 1
	}

	return bt, bt.Validate()
}

// Validate validates backtest run parameters
func (c Config) Validate() error {
	if c.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	if c.StartWeek < 1 {
		return fmt.Errorf("start week must be at least 1")
	}
	if c.EndWeek < c.StartWeek {
		return fmt.Errorf("end week must not be before start week")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}
