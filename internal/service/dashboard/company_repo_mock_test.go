package dashboard

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListFunc    func(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.CompanyFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *companyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but companyRepo.GetByID was just called")
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

func (mock *companyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *companyRepoMock) List(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error) {
	if mock.ListFunc == nil {
		panic("companyRepoMock.ListFunc: method is nil but companyRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CompanyFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *companyRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.CompanyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
