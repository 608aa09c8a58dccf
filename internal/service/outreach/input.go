package outreach

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

const (
	defaultMeetingMinutes = 30
	maxMeetingMinutes     = 8 * 60
	maxSubjectLen         = 300
	maxBodyLen            = 100_000
)

// MeetingInput is a calendar invite request. Date is YYYY-MM-DD, Time is
// HH:MM in the service's time zone.
type MeetingInput struct {
	Title           string
	Date            string
	Time            string
	DurationMinutes int
	AttendeeEmail   string
	AttendeeName    string
	Notes           string
	HostEmail       string

	start time.Time
}

// Validate trims the fields, fills the default duration and parses the
// start time.
func (i *MeetingInput) Validate(loc *time.Location) error {
	var errs []domain.FieldError

	i.Title = strings.TrimSpace(i.Title)
	i.AttendeeEmail = strings.TrimSpace(i.AttendeeEmail)
	i.AttendeeName = strings.TrimSpace(i.AttendeeName)
	i.HostEmail = strings.TrimSpace(i.HostEmail)

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Time == "" {
		errs = append(errs, domain.FieldError{Field: "time", Message: "required"})
	}
	if i.Date != "" && i.Time != "" {
		start, err := time.ParseInLocation("2006-01-02 15:04", i.Date+" "+i.Time, loc)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "expected YYYY-MM-DD and HH:MM"})
		}
		i.start = start
	}

	switch {
	case i.DurationMinutes == 0:
		i.DurationMinutes = defaultMeetingMinutes
	case i.DurationMinutes < 0 || i.DurationMinutes > maxMeetingMinutes:
		errs = append(errs, domain.FieldError{Field: "durationMinutes", Message: fmt.Sprintf("must be between 1 and %d", maxMeetingMinutes)})
	}

	if i.AttendeeEmail == "" {
		errs = append(errs, domain.FieldError{Field: "attendeeEmail", Message: "required"})
	} else if !validAddress(i.AttendeeEmail) {
		errs = append(errs, domain.FieldError{Field: "attendeeEmail", Message: "invalid email"})
	}
	if i.HostEmail != "" && !validAddress(i.HostEmail) {
		errs = append(errs, domain.FieldError{Field: "hostEmail", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MailInput is a plain-text email to a founder.
type MailInput struct {
	To      string
	Subject string
	Body    string
	From    string
}

// Validate checks required fields and rejects header injection.
func (i *MailInput) Validate() error {
	var errs []domain.FieldError

	i.To = strings.TrimSpace(i.To)
	i.From = strings.TrimSpace(i.From)
	i.Subject = strings.TrimSpace(i.Subject)

	if i.To == "" {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	} else if _, err := mail.ParseAddressList(i.To); err != nil || hasNewline(i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "invalid recipient list"})
	}
	if i.Subject == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	} else if hasNewline(i.Subject) {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "must be a single line"})
	} else if len(i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: fmt.Sprintf("max %d characters", maxSubjectLen)})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if len(i.Body) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}
	if i.From != "" {
		if _, err := mail.ParseAddress(i.From); err != nil || hasNewline(i.From) {
			errs = append(errs, domain.FieldError{Field: "from", Message: "invalid sender"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func hasNewline(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
