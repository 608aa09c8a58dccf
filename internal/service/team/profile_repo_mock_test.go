package team

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Profile, error)
	ListFunc       func(ctx context.Context) ([]domain.Profile, error)
	CreateFunc     func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateRoleFunc func(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Profile
		}
		UpdateRole []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Role domain.Role
		}
	}
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
	lockList       sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdateRole sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
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

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if mock.GetByEmailFunc == nil {
		panic("profileRepoMock.GetByEmailFunc: method is nil but profileRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *profileRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
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

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if mock.UpdateRoleFunc == nil {
		panic("profileRepoMock.UpdateRoleFunc: method is nil but profileRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Role domain.Role
	}{
		Ctx:  ctx,
		Id:   id,
		Role: role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *profileRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Role domain.Role
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}
