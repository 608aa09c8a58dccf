package team

import (
	"context"
	"sync"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendFunc func(ctx context.Context, to string, subject string, body string) error

	calls struct {
		Send []struct {
			Ctx     context.Context
			To      string
			Subject string
			Body    string
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailerMock) Send(ctx context.Context, to string, subject string, body string) error {
	if mock.SendFunc == nil {
		panic("mailerMock.SendFunc: method is nil but mailer.Send was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		To      string
		Subject string
		Body    string
	}{
		Ctx:     ctx,
		To:      to,
		Subject: subject,
		Body:    body,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, to, subject, body)
}

func (mock *mailerMock) SendCalls() []struct {
	Ctx     context.Context
	To      string
	Subject string
	Body    string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
