// Package ctxutil carries per-request values through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	identityKey  struct{}
	requestIDKey struct{}
)

// Identity is the authenticated caller as resolved by the auth middleware.
// Role is empty for callers that hold a valid token but no profile.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// WithIdentity stores the caller's profile ID, email and role.
func WithIdentity(ctx context.Context, id uuid.UUID, email, role string) context.Context {
	return context.WithValue(ctx, identityKey{}, Identity{UserID: id, Email: email, Role: role})
}

// WithUserID stores a bare user ID, for background jobs and tests that act
// on behalf of a user without a resolved role.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithIdentity(ctx, id, "", "")
}

// IdentityFromCtx returns the stored identity. ok is false when there is
// none or its user ID is nil.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}

func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := IdentityFromCtx(ctx)
	return id.UserID, ok
}

func EmailFromCtx(ctx context.Context) string {
	id, _ := IdentityFromCtx(ctx)
	return id.Email
}

// RoleFromCtx returns "" for anonymous callers and for callers without a
// profile yet.
func RoleFromCtx(ctx context.Context) string {
	id, _ := IdentityFromCtx(ctx)
	return id.Role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
