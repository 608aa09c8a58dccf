package dashboard

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ industryRepo = &industryRepoMock{}

type industryRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Industry, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *industryRepoMock) List(ctx context.Context) ([]domain.Industry, error) {
	if mock.ListFunc == nil {
		panic("industryRepoMock.ListFunc: method is nil but industryRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *industryRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
