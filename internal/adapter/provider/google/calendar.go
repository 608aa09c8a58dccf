package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"google.golang.org/api/calendar/v3"
)

// Event describes a meeting to put on the host's primary calendar.
type Event struct {
	Title         string
	Start         time.Time
	Duration      time.Duration
	AttendeeEmail string
	AttendeeName  string
	Notes         string
	HostEmail     string
}

// CreatedEvent is what Google returned for an inserted event.
type CreatedEvent struct {
	ID        string
	HTMLLink  string
	MeetLink  string
	Start     *calendar.EventDateTime
	End       *calendar.EventDateTime
	Refreshed *Token
}

// CreateEvent inserts the event with a Meet conference and invites the
// attendees by email.
func (c *Client) CreateEvent(ctx context.Context, creds Credentials, ev Event) (*CreatedEvent, error) {
	s, err := c.session(ctx, creds)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, s.options()...)
	if err != nil {
		return nil, mapError("calendar client", err)
	}

	created, err := svc.Events.Insert("primary", buildEvent(ev)).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		c.log.WarnContext(ctx, "calendar insert failed", slog.String("error", err.Error()))
		return nil, mapError("insert event", err)
	}

	c.log.InfoContext(ctx, "calendar event created",
		slog.String("event_id", created.Id),
		slog.String("attendee", ev.AttendeeEmail),
	)

	return &CreatedEvent{
		ID:        created.Id,
		HTMLLink:  created.HtmlLink,
		MeetLink:  meetLink(created),
		Start:     created.Start,
		End:       created.End,
		Refreshed: s.refreshed(),
	}, nil
}

func buildEvent(ev Event) *calendar.Event {
	description := ev.Notes
	if description == "" {
		who := ev.AttendeeName
		if who == "" {
			who = ev.AttendeeEmail
		}
		description = "Meeting with " + who
	}

	tz := ev.Start.Location().String()
	end := ev.Start.Add(ev.Duration)

	attendees := []*calendar.EventAttendee{{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName}}
	if ev.HostEmail != "" {
		attendees = append(attendees, &calendar.EventAttendee{Email: ev.HostEmail, Self: true})
	}

	return &calendar.Event{
		Summary:     ev.Title,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: tz},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: tz},
		Attendees:   attendees,
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             "meet-" + randomID(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 60},
				{Method: "popup", Minutes: 10},
			},
		},
	}
}

func meetLink(ev *calendar.Event) string {
	if ev.ConferenceData == nil {
		return ev.HangoutLink
	}
	for _, ep := range ev.ConferenceData.EntryPoints {
		if ep.EntryPointType == "video" {
			return ep.Uri
		}
	}
	return ev.HangoutLink
}

func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
