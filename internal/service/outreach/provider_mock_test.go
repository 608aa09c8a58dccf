package outreach

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/adapter/provider/google"
	"sync"
)

var _ provider = &providerMock{}

type providerMock struct {
	CreateEventFunc func(ctx context.Context, creds google.Credentials, ev google.Event) (*google.CreatedEvent, error)
	SendMailFunc    func(ctx context.Context, creds google.Credentials, m google.Mail) (*google.SentMail, error)

	calls struct {
		CreateEvent []struct {
			Ctx   context.Context
			Creds google.Credentials
			Ev    google.Event
		}
		SendMail []struct {
			Ctx   context.Context
			Creds google.Credentials
			M     google.Mail
		}
	}
	lockCreateEvent sync.RWMutex
	lockSendMail    sync.RWMutex
}

func (mock *providerMock) CreateEvent(ctx context.Context, creds google.Credentials, ev google.Event) (*google.CreatedEvent, error) {
	if mock.CreateEventFunc == nil {
		panic("providerMock.CreateEventFunc: method is nil but provider.CreateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds google.Credentials
		Ev    google.Event
	}{
		Ctx:   ctx,
		Creds: creds,
		Ev:    ev,
	}
	mock.lockCreateEvent.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, callInfo)
	mock.lockCreateEvent.Unlock()
	return mock.CreateEventFunc(ctx, creds, ev)
}

func (mock *providerMock) CreateEventCalls() []struct {
	Ctx   context.Context
	Creds google.Credentials
	Ev    google.Event
} {
	mock.lockCreateEvent.RLock()
	calls := mock.calls.CreateEvent
	mock.lockCreateEvent.RUnlock()
	return calls
}

func (mock *providerMock) SendMail(ctx context.Context, creds google.Credentials, m google.Mail) (*google.SentMail, error) {
	if mock.SendMailFunc == nil {
		panic("providerMock.SendMailFunc: method is nil but provider.SendMail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds google.Credentials
		M     google.Mail
	}{
		Ctx:   ctx,
		Creds: creds,
		M:     m,
	}
	mock.lockSendMail.Lock()
	mock.calls.SendMail = append(mock.calls.SendMail, callInfo)
	mock.lockSendMail.Unlock()
	return mock.SendMailFunc(ctx, creds, m)
}

func (mock *providerMock) SendMailCalls() []struct {
	Ctx   context.Context
	Creds google.Credentials
	M     google.Mail
} {
	mock.lockSendMail.RLock()
	calls := mock.calls.SendMail
	mock.lockSendMail.RUnlock()
	return calls
}
