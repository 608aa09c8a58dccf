package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only record of a company mutation.
type ActivityLog struct {
	ID          uuid.UUID      `json:"id"`
	CompanyID   uuid.UUID      `json:"companyId"`
	UserID      *uuid.UUID     `json:"userId"`
	Action      ActivityAction `json:"action"`
	Details     string         `json:"details"`
	FromStageID *uuid.UUID     `json:"fromStageId"`
	ToStageID   *uuid.UUID     `json:"toStageId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Comment is an append-only note on a company.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is a per-user inbox item. Only Read ever changes.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CompanyID *uuid.UUID       `json:"companyId"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Profile is a team member known to the application.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName prefers the full name and falls back to the email.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
