package pipeline

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ stageRepo = &stageRepoMock{}

type stageRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.PipelineStage, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.PipelineStage, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *stageRepoMock) List(ctx context.Context) ([]domain.PipelineStage, error) {
	if mock.ListFunc == nil {
		panic("stageRepoMock.ListFunc: method is nil but stageRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *stageRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *stageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PipelineStage, error) {
	if mock.GetByIDFunc == nil {
		panic("stageRepoMock.GetByIDFunc: method is nil but stageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *stageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
