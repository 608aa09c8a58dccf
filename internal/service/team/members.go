package team

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// ListTeam returns every profile ordered by name.
func (s *Service) ListTeam(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// UpdateRole changes a member's role. Only admins may call it, and the
// super-admin cannot be demoted.
func (s *Service) UpdateRole(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if domain.Role(ctxutil.RoleFromCtx(ctx)) != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be analyst, partner or admin")
	}

	target, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if s.IsSuperAdmin(target.Email) && role != domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "the super admin is always an admin")
	}
	if target.Role == role {
		return target, nil
	}

	updated, err := s.profiles.UpdateRole(ctx, profileID, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	s.forget()
	s.publish(ctx, domain.OpUpdate, updated)

	s.log.InfoContext(ctx, "role updated",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", profileID.String()),
		slog.String("from", target.Role.String()),
		slog.String("to", role.String()),
	)
	return updated, nil
}
