package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RejectionReason is one selected category with its chosen sub-reasons.
type RejectionReason struct {
	CategoryID   uuid.UUID   `json:"categoryId"`
	SubReasonIDs []uuid.UUID `json:"subReasonIds"`
}

// RejectionRecord snapshots why and how a company was rejected. Written once.
type RejectionRecord struct {
	ID                  uuid.UUID           `json:"id"`
	CompanyID           uuid.UUID           `json:"companyId"`
	Reasons             []RejectionReason   `json:"reasons"`
	RejectionStageID    *uuid.UUID          `json:"rejectionStageId"`
	CommunicationMethod CommunicationMethod `json:"communicationMethod"`
	EmailRecipient      *string             `json:"emailRecipient"`
	EmailDraft          *string             `json:"emailDraft"`
	EmailSent           bool                `json:"emailSent"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// RejectionEmailSent reports whether a rejection counts as emailed: the
// method is Email and a non-empty draft exists. Nothing is actually sent.
func RejectionEmailSent(method CommunicationMethod, draft *string) bool {
	return method == CommunicationEmail && draft != nil && strings.TrimSpace(*draft) != ""
}

// RejectionEmail renders the standard decline letter. categories are the
// names of the selected rejection categories.
func RejectionEmail(founderName, companyName, firmName string, categories []string) string {
	reasons := strings.ToLower(strings.Join(categories, ", "))

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", founderName)
	fmt.Fprintf(&b, "Thank you for sharing %s's journey with us at %s. We truly appreciate you taking the time to walk us through your vision and progress.\n\n", companyName, firmName)
	fmt.Fprintf(&b, "After careful consideration by our investment team, we've decided not to proceed with an investment at this time. Our assessment highlighted areas related to %s that don't align with our current investment thesis and criteria.\n\n", reasons)
	fmt.Fprintf(&b, "This decision does not diminish the value of what you're building. We recognize the hard work and dedication behind %s, and we encourage you to continue pursuing your vision.\n\n", companyName)
	b.WriteString("We'd love to stay connected and revisit this conversation as your company reaches new milestones. Please don't hesitate to reach out if there are significant developments or if you're raising a future round.\n\n")
	fmt.Fprintf(&b, "Wishing you and the %s team all the best.\n\n", companyName)
	fmt.Fprintf(&b, "Warm regards,\n%s", firmName)
	return b.String()
}
