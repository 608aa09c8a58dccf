package dashboard

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Profile, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *profileRepoMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *profileRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
