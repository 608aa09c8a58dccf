package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.SuperAdminEmail != "" && !strings.Contains(c.Auth.SuperAdminEmail, "@") {
		return fmt.Errorf("auth.super_admin_email is not an email address")
	}

	if (c.Google.ClientID == "") != (c.Google.ClientSecret == "") {
		return fmt.Errorf("google.client_id and google.client_secret must be set together")
	}

	if _, err := c.Google.Location(); err != nil {
		return fmt.Errorf("google.time_zone: %w", err)
	}

	if c.Mail.ShoutrrrURL != "" {
		u, err := url.Parse(c.Mail.ShoutrrrURL)
		if err != nil {
			return fmt.Errorf("mail.shoutrrr_url: %w", err)
		}
		if u.Scheme != "smtp" {
			return fmt.Errorf("mail.shoutrrr_url must use the smtp scheme (got %q)", u.Scheme)
		}
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (p *PipelineConfig) validate() error {
	if p.OverdueDays <= 0 {
		return fmt.Errorf("overdue_days must be > 0 (got %d)", p.OverdueDays)
	}
	if p.AtRiskDays <= 0 {
		return fmt.Errorf("at_risk_days must be > 0 (got %d)", p.AtRiskDays)
	}
	if p.AtRiskDays > p.OverdueDays {
		return fmt.Errorf("at_risk_days (%d) must not exceed overdue_days (%d)", p.AtRiskDays, p.OverdueDays)
	}
	return nil
}
