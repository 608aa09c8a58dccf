package pipeline

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
	"time"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListFunc              func(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
	CreateFunc            func(ctx context.Context, c *domain.Company) (*domain.Company, error)
	UpdateFunc            func(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (*domain.Company, error)
	SetStageFunc          func(ctx context.Context, id uuid.UUID, stageID uuid.UUID) error
	SetAnalystFunc        func(ctx context.Context, id uuid.UUID, analystID *uuid.UUID) error
	SetTerminalStatusFunc func(ctx context.Context, id uuid.UUID, status domain.TerminalStatus) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	MarkOverdueFunc       func(ctx context.Context, now time.Time, overdueDays int) ([]domain.Company, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.CompanyFilter
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Company
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.CompanyUpdateParams
		}
		SetStage []struct {
			Ctx     context.Context
			Id      uuid.UUID
			StageID uuid.UUID
		}
		SetAnalyst []struct {
			Ctx       context.Context
			Id        uuid.UUID
			AnalystID *uuid.UUID
		}
		SetTerminalStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.TerminalStatus
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		MarkOverdue []struct {
			Ctx         context.Context
			Now         time.Time
			OverdueDays int
		}
	}
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockList              sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockSetStage          sync.RWMutex
	lockSetAnalyst        sync.RWMutex
	lockSetTerminalStatus sync.RWMutex
	lockDelete            sync.RWMutex
	lockMarkOverdue       sync.RWMutex
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

func (mock *companyRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetForUpdateFunc == nil {
		panic("companyRepoMock.GetForUpdateFunc: method is nil but companyRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *companyRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
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

func (mock *companyRepoMock) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	if mock.CreateFunc == nil {
		panic("companyRepoMock.CreateFunc: method is nil but companyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Company
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *companyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Company
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *companyRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (*domain.Company, error) {
	if mock.UpdateFunc == nil {
		panic("companyRepoMock.UpdateFunc: method is nil but companyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.CompanyUpdateParams
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

func (mock *companyRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.CompanyUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *companyRepoMock) SetStage(ctx context.Context, id uuid.UUID, stageID uuid.UUID) error {
	if mock.SetStageFunc == nil {
		panic("companyRepoMock.SetStageFunc: method is nil but companyRepo.SetStage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      uuid.UUID
		StageID uuid.UUID
	}{
		Ctx:     ctx,
		Id:      id,
		StageID: stageID,
	}
	mock.lockSetStage.Lock()
	mock.calls.SetStage = append(mock.calls.SetStage, callInfo)
	mock.lockSetStage.Unlock()
	return mock.SetStageFunc(ctx, id, stageID)
}

func (mock *companyRepoMock) SetStageCalls() []struct {
	Ctx     context.Context
	Id      uuid.UUID
	StageID uuid.UUID
} {
	mock.lockSetStage.RLock()
	calls := mock.calls.SetStage
	mock.lockSetStage.RUnlock()
	return calls
}

func (mock *companyRepoMock) SetAnalyst(ctx context.Context, id uuid.UUID, analystID *uuid.UUID) error {
	if mock.SetAnalystFunc == nil {
		panic("companyRepoMock.SetAnalystFunc: method is nil but companyRepo.SetAnalyst was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		AnalystID *uuid.UUID
	}{
		Ctx:       ctx,
		Id:        id,
		AnalystID: analystID,
	}
	mock.lockSetAnalyst.Lock()
	mock.calls.SetAnalyst = append(mock.calls.SetAnalyst, callInfo)
	mock.lockSetAnalyst.Unlock()
	return mock.SetAnalystFunc(ctx, id, analystID)
}

func (mock *companyRepoMock) SetAnalystCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	AnalystID *uuid.UUID
} {
	mock.lockSetAnalyst.RLock()
	calls := mock.calls.SetAnalyst
	mock.lockSetAnalyst.RUnlock()
	return calls
}

func (mock *companyRepoMock) SetTerminalStatus(ctx context.Context, id uuid.UUID, status domain.TerminalStatus) error {
	if mock.SetTerminalStatusFunc == nil {
		panic("companyRepoMock.SetTerminalStatusFunc: method is nil but companyRepo.SetTerminalStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.TerminalStatus
	}{
		Ctx:    ctx,
		Id:     id,
		Status: status,
	}
	mock.lockSetTerminalStatus.Lock()
	mock.calls.SetTerminalStatus = append(mock.calls.SetTerminalStatus, callInfo)
	mock.lockSetTerminalStatus.Unlock()
	return mock.SetTerminalStatusFunc(ctx, id, status)
}

func (mock *companyRepoMock) SetTerminalStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.TerminalStatus
} {
	mock.lockSetTerminalStatus.RLock()
	calls := mock.calls.SetTerminalStatus
	mock.lockSetTerminalStatus.RUnlock()
	return calls
}

func (mock *companyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("companyRepoMock.DeleteFunc: method is nil but companyRepo.Delete was just called")
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

func (mock *companyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *companyRepoMock) MarkOverdue(ctx context.Context, now time.Time, overdueDays int) ([]domain.Company, error) {
	if mock.MarkOverdueFunc == nil {
		panic("companyRepoMock.MarkOverdueFunc: method is nil but companyRepo.MarkOverdue was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Now         time.Time
		OverdueDays int
	}{
		Ctx:         ctx,
		Now:         now,
		OverdueDays: overdueDays,
	}
	mock.lockMarkOverdue.Lock()
	mock.calls.MarkOverdue = append(mock.calls.MarkOverdue, callInfo)
	mock.lockMarkOverdue.Unlock()
	return mock.MarkOverdueFunc(ctx, now, overdueDays)
}

func (mock *companyRepoMock) MarkOverdueCalls() []struct {
	Ctx         context.Context
	Now         time.Time
	OverdueDays int
} {
	mock.lockMarkOverdue.RLock()
	calls := mock.calls.MarkOverdue
	mock.lockMarkOverdue.RUnlock()
	return calls
}
