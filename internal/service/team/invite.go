package team

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// InviteInput names who to invite and with which role.
type InviteInput struct {
	Email string
	Role  domain.Role
}

// Validate normalizes the email and checks both fields.
func (i *InviteInput) Validate() error {
	var v domain.ValidationError

	i.Email = strings.TrimSpace(i.Email)
	if i.Email == "" {
		v.Add("email", "required")
	} else if addr, err := mail.ParseAddress(i.Email); err != nil || addr.Address != i.Email {
		v.Add("email", "invalid email")
	}
	if !i.Role.IsValid() {
		v.Add("role", "must be analyst, partner or admin")
	}

	return v.Err()
}

// Invitation is the outcome of a successful invite.
type Invitation struct {
	Profile         *domain.Profile `json:"profile"`
	RegistrationURL string          `json:"registrationUrl"`
	Created         bool            `json:"created"`
}

// Invite records a pending profile for email (unless one exists) and mails
// the registration link. Existing members keep their role; they only get
// the mail again. A mail failure is returned after the profile is stored.
func (s *Service) Invite(ctx context.Context, in InviteInput) (*Invitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	caller := domain.Role(ctxutil.RoleFromCtx(ctx))
	if !caller.CanManageReferenceData() {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	// Granting admin is reserved to admins, as with UpdateRole.
	if in.Role == domain.RoleAdmin && caller != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	inv := &Invitation{RegistrationURL: s.registrationURL(in.Email, in.Role)}

	p, err := s.profiles.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		inv.Profile = p
	case isNotFound(err):
		p, err = s.profiles.Create(ctx, &domain.Profile{
			ID:    uuid.New(),
			Email: in.Email,
			Role:  in.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("create invited profile: %w", err)
		}
		inv.Profile = p
		inv.Created = true
		s.publish(ctx, domain.OpInsert, p)
	default:
		return nil, fmt.Errorf("get profile by email: %w", err)
	}

	subject, body := InvitationEmail(s.cfg.AppName, in.Role, inv.RegistrationURL)
	if err := s.mail.Send(ctx, in.Email, subject, body); err != nil {
		s.log.ErrorContext(ctx, "invite mail failed",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("send invitation: %w", err)
	}

	s.log.InfoContext(ctx, "member invited",
		slog.String("user_id", userID.String()),
		slog.String("email", in.Email),
		slog.String("role", in.Role.String()),
		slog.Bool("created", inv.Created),
	)
	return inv, nil
}

func (s *Service) registrationURL(email string, role domain.Role) string {
	q := url.Values{}
	q.Set("email", email)
	q.Set("role", role.String())
	return s.cfg.SiteURL + "/login?" + q.Encode()
}

// InvitationEmail renders the subject and plain-text body of an invite.
func InvitationEmail(appName string, role domain.Role, registrationURL string) (subject, body string) {
	subject = "You are invited to join " + appName
	body = fmt.Sprintf("Hi,\n\nYou have been invited to join %s as a %s.\n\n"+
		"To get started, click the link below to register your account:\n%s\n\nThanks!",
		appName, role, registrationURL)
	return subject, body
}
