package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/dealflow-backend/internal/auth"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// tokenCommand mints a bearer token signed with the configured secret, for
// local development and scripts. The caller still needs a profile for role
// checks to pass; invite the email first or use the super-admin email.
func tokenCommand(e *env) *cobra.Command {
	var (
		email   string
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			if role != "" && !domain.Role(role).IsValid() {
				return fmt.Errorf("invalid role %q", role)
			}

			id := uuid.New()
			if subject != "" {
				parsed, err := uuid.Parse(subject)
				if err != nil {
					return fmt.Errorf("--subject: %w", err)
				}
				id = parsed
			}
			if ttl <= 0 {
				ttl = e.cfg.Auth.AccessTokenTTL
			}

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, ttl)
			token, err := jwt.GenerateAccessToken(id, email, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email claim (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject uuid (default: random)")
	cmd.Flags().StringVar(&role, "role", "", "role hint claim: analyst, partner or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	return cmd
}
