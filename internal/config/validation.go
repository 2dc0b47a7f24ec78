package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Custom validators
	_ = validate.RegisterValidation("environment", validateEnvironment)
	_ = validate.RegisterValidation("loglevel", validateLogLevel)
}

// Validate checks the configuration for structural and semantic errors
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Backtest.EndWeek < c.Backtest.StartWeek {
		return fmt.Errorf("backtest end_week (%d) must not precede start_week (%d)",
			c.Backtest.EndWeek, c.Backtest.StartWeek)
	}

	if c.Database.Enabled {
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("database is enabled but host, name and user are not all set")
		}
	} else {
		if c.Data.StandingsDir == "" || c.Data.ScheduleDir == "" {
			return fmt.Errorf("database is disabled but data.standings_dir and data.schedule_dir are not set")
		}
	}

	return nil
}

func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	}
	return false
}

func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return true
	}
	return false
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
}
