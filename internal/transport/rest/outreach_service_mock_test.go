package rest

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/dealflow-backend/internal/service/outreach"
	"sync"
)

var _ outreachService = &outreachServiceMock{}

type outreachServiceMock struct {
	ScheduleMeetingFunc func(ctx context.Context, creds google.Credentials, in outreach.MeetingInput) (*google.CreatedEvent, error)
	SendEmailFunc       func(ctx context.Context, creds google.Credentials, in outreach.MailInput) (*google.SentMail, error)

	calls struct {
		ScheduleMeeting []struct {
			Ctx   context.Context
			Creds google.Credentials
			In    outreach.MeetingInput
		}
		SendEmail []struct {
			Ctx   context.Context
			Creds google.Credentials
			In    outreach.MailInput
		}
	}
	lockScheduleMeeting sync.RWMutex
	lockSendEmail       sync.RWMutex
}

func (mock *outreachServiceMock) ScheduleMeeting(ctx context.Context, creds google.Credentials, in outreach.MeetingInput) (*google.CreatedEvent, error) {
	if mock.ScheduleMeetingFunc == nil {
		panic("outreachServiceMock.ScheduleMeetingFunc: method is nil but outreachService.ScheduleMeeting was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds google.Credentials
		In    outreach.MeetingInput
	}{
		Ctx:   ctx,
		Creds: creds,
		In:    in,
	}
	mock.lockScheduleMeeting.Lock()
	mock.calls.ScheduleMeeting = append(mock.calls.ScheduleMeeting, callInfo)
	mock.lockScheduleMeeting.Unlock()
	return mock.ScheduleMeetingFunc(ctx, creds, in)
}

func (mock *outreachServiceMock) ScheduleMeetingCalls() []struct {
	Ctx   context.Context
	Creds google.Credentials
	In    outreach.MeetingInput
} {
	mock.lockScheduleMeeting.RLock()
	calls := mock.calls.ScheduleMeeting
	mock.lockScheduleMeeting.RUnlock()
	return calls
}

func (mock *outreachServiceMock) SendEmail(ctx context.Context, creds google.Credentials, in outreach.MailInput) (*google.SentMail, error) {
	if mock.SendEmailFunc == nil {
		panic("outreachServiceMock.SendEmailFunc: method is nil but outreachService.SendEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds google.Credentials
		In    outreach.MailInput
	}{
		Ctx:   ctx,
		Creds: creds,
		In:    in,
	}
	mock.lockSendEmail.Lock()
	mock.calls.SendEmail = append(mock.calls.SendEmail, callInfo)
	mock.lockSendEmail.Unlock()
	return mock.SendEmailFunc(ctx, creds, in)
}

func (mock *outreachServiceMock) SendEmailCalls() []struct {
	Ctx   context.Context
	Creds google.Credentials
	In    outreach.MailInput
} {
	mock.lockSendEmail.RLock()
	calls := mock.calls.SendEmail
	mock.lockSendEmail.RUnlock()
	return calls
}
