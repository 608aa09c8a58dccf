package refdata

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ dealSourceRepo = &dealSourceRepoMock{}

type dealSourceRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.DealSourceName, error)
	CreateFunc func(ctx context.Context, name string) (*domain.DealSourceName, error)
	RenameFunc func(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx  context.Context
			Name string
		}
		Rename []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Name string
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockRename sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *dealSourceRepoMock) List(ctx context.Context) ([]domain.DealSourceName, error) {
	if mock.ListFunc == nil {
		panic("dealSourceRepoMock.ListFunc: method is nil but dealSourceRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *dealSourceRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dealSourceRepoMock) Create(ctx context.Context, name string) (*domain.DealSourceName, error) {
	if mock.CreateFunc == nil {
		panic("dealSourceRepoMock.CreateFunc: method is nil but dealSourceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *dealSourceRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dealSourceRepoMock) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.DealSourceName, error) {
	if mock.RenameFunc == nil {
		panic("dealSourceRepoMock.RenameFunc: method is nil but dealSourceRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Name string
	}{
		Ctx:  ctx,
		Id:   id,
		Name: name,
	}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, id, name)
}

func (mock *dealSourceRepoMock) RenameCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Name string
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *dealSourceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dealSourceRepoMock.DeleteFunc: method is nil but dealSourceRepo.Delete was just called")
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

func (mock *dealSourceRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
