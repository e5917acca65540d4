package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.MinPasswordLen < 6 {
		return fmt.Errorf("auth.min_password_len must be at least 6 (got %d)", c.Auth.MinPasswordLen)
	}

	if err := c.Plan.validate(); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if c.Evaluation.MaxEssayBytes <= 0 {
		return fmt.Errorf("evaluation.max_essay_bytes must be > 0 (got %d)", c.Evaluation.MaxEssayBytes)
	}

	if c.Database.AutoMigrate && c.Database.MigrationsDir == "" {
		return fmt.Errorf("database.migrations_dir must be set when auto_migrate is enabled")
	}

	return nil
}

func (p *PlanConfig) validate() error {
	if p.MaxDurationDays < 1 {
		return fmt.Errorf("max_duration_days must be at least 1 (got %d)", p.MaxDurationDays)
	}
	if p.MaxHoursPerDay <= 0 || p.MaxHoursPerDay > 24 {
		return fmt.Errorf("max_hours_per_day must be in (0, 24] (got %v)", p.MaxHoursPerDay)
	}
	return nil
}
