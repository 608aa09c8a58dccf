package rest

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/service/notification"
	"sync"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListFunc        func(ctx context.Context) (*notification.Inbox, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	MarkAllReadFunc func(ctx context.Context) (int64, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		UnreadCount []struct {
			Ctx context.Context
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
	}
	lockList        sync.RWMutex
	lockUnreadCount sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *notificationServiceMock) List(ctx context.Context) (*notification.Inbox, error) {
	if mock.ListFunc == nil {
		panic("notificationServiceMock.ListFunc: method is nil but notificationService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *notificationServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnreadCount(ctx context.Context) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationServiceMock.UnreadCountFunc: method is nil but notificationService.UnreadCount was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx)
}

func (mock *notificationServiceMock) UnreadCountCalls() []struct{ Ctx context.Context } {
	mock.lockUnreadCount.RLock()
	calls := mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct{ Ctx context.Context } {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}
