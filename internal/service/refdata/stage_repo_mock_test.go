package refdata

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ stageRepo = &stageRepoMock{}

type stageRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.PipelineStage, error)
	CreateFunc func(ctx context.Context, name string, color string, description *string, order int) (*domain.PipelineStage, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, p domain.StageUpdateParams) (*domain.PipelineStage, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx         context.Context
			Name        string
			Color       string
			Description *string
			Order       int
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.StageUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
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

func (mock *stageRepoMock) Create(ctx context.Context, name string, color string, description *string, order int) (*domain.PipelineStage, error) {
	if mock.CreateFunc == nil {
		panic("stageRepoMock.CreateFunc: method is nil but stageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Color       string
		Description *string
		Order       int
	}{
		Ctx:         ctx,
		Name:        name,
		Color:       color,
		Description: description,
		Order:       order,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, color, description, order)
}

func (mock *stageRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	Name        string
	Color       string
	Description *string
	Order       int
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *stageRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.StageUpdateParams) (*domain.PipelineStage, error) {
	if mock.UpdateFunc == nil {
		panic("stageRepoMock.UpdateFunc: method is nil but stageRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.StageUpdateParams
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *stageRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.StageUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *stageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("stageRepoMock.DeleteFunc: method is nil but stageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *stageRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
