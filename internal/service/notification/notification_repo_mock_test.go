package notification

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnreadFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID) (int64, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		CountUnread []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByUser  sync.RWMutex
	lockCountUnread sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, userID)
}

func (mock *notificationRepoMock) CountUnreadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID)
}

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}
