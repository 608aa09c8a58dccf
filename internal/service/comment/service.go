package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

// MaxTextLength bounds a single comment.
const MaxTextLength = 5000

type commentRepo interface {
	Create(ctx context.Context, companyID, authorID uuid.UUID, text string) (*domain.Comment, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Comment, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

type publisher interface {
	Publish(ctx context.Context, ev domain.ChangeEvent) error
}

// Service manages per-company comment threads.
type Service struct {
	comments  commentRepo
	companies companyRepo
	bus       publisher
	log       *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, companies companyRepo, bus publisher) *Service {
	return &Service{
		comments:  comments,
		companies: companies,
		bus:       bus,
		log:       log.With("service", "comment"),
	}
}

// Add appends a comment by the caller to a company's thread.
func (s *Service) Add(ctx context.Context, companyID uuid.UUID, text string) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, domain.NewValidationError("text", "required")
	case len([]rune(text)) > MaxTextLength:
		return nil, domain.NewValidationError("text", "max 5000 characters")
	}

	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	c, err := s.comments.Create(ctx, companyID, userID, text)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if ev, err := domain.NewChangeEvent(domain.TableComments, domain.OpInsert, c.ID, c); err == nil {
		if err := s.bus.Publish(ctx, ev); err != nil {
			s.log.WarnContext(ctx, "publish comment failed", slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("company_id", companyID.String()),
	)
	return c, nil
}

// List returns a company's comments, oldest first.
func (s *Service) List(ctx context.Context, companyID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.comments.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
