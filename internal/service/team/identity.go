package team

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// Identity is what a verified bearer token says about the caller.
type Identity struct {
	Subject   uuid.UUID
	Email     string
	Name      string
	AvatarURL *string
}

func (id Identity) cacheKey() string {
	return id.Subject.String() + "|" + strings.ToLower(strings.TrimSpace(id.Email))
}

// Resolve maps a bearer identity to its profile. The profile is looked up
// by subject first and by email second, which picks up members invited
// before their first sign-in. The super-admin always ends up with an admin
// profile, created or upgraded as needed. Anyone else without a profile
// gets domain.ErrNotFound.
func (s *Service) Resolve(ctx context.Context, id Identity) (*domain.Profile, error) {
	key := id.cacheKey()
	if v, ok := s.resolved.Get(key); ok {
		p := v.(domain.Profile)
		return &p, nil
	}

	p, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.IsSuperAdmin(id.Email) && p.Role != domain.RoleAdmin {
		p, err = s.profiles.UpdateRole(ctx, p.ID, domain.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("upgrade super admin: %w", err)
		}
		s.log.InfoContext(ctx, "super admin upgraded", slog.String("profile_id", p.ID.String()))
		s.publish(ctx, domain.OpUpdate, p)
	}

	s.resolved.SetDefault(key, *p)
	return p, nil
}

func (s *Service) lookup(ctx context.Context, id Identity) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id.Subject)
	if err == nil {
		return p, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("get profile by id: %w", err)
	}

	email := strings.TrimSpace(id.Email)
	if email != "" {
		p, err = s.profiles.GetByEmail(ctx, email)
		if err == nil {
			return p, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("get profile by email: %w", err)
		}
	}

	if !s.IsSuperAdmin(email) {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = email
	}
	p, err = s.profiles.Create(ctx, &domain.Profile{
		ID:        id.Subject,
		Email:     email,
		FullName:  name,
		Role:      domain.RoleAdmin,
		AvatarURL: id.AvatarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create super admin: %w", err)
	}
	s.log.InfoContext(ctx, "super admin profile created", slog.String("profile_id", p.ID.String()))
	s.publish(ctx, domain.OpInsert, p)
	return p, nil
}

// Me returns the caller's profile, using the identity the auth middleware
// stored in the context.
func (s *Service) Me(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.Resolve(ctx, Identity{Subject: userID, Email: ctxutil.EmailFromCtx(ctx)})
}
