package pipeline

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc        func(ctx context.Context, e *domain.ActivityLog) (*domain.ActivityLog, error)
	ListByCompanyFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.ActivityLog
		}
		ListByCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockListByCompany sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, e *domain.ActivityLog) (*domain.ActivityLog, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.ActivityLog
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.ActivityLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error) {
	if mock.ListByCompanyFunc == nil {
		panic("activityRepoMock.ListByCompanyFunc: method is nil but activityRepo.ListByCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID)
}

func (mock *activityRepoMock) ListByCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockListByCompany.RLock()
	calls := mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}
