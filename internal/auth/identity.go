package auth

import "github.com/google/uuid"

// Claims is what a verified bearer token asserts about the caller. Subject
// is the identity provider's user id. Role is informational; requests are
// authorized against the stored profile role.
type Claims struct {
	Subject   uuid.UUID
	Email     string
	Role      string
	Name      string
	AvatarURL *string
}
