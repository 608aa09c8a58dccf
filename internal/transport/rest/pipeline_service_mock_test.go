package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/pipeline"
	"sync"
)

var _ pipelineService = &pipelineServiceMock{}

type pipelineServiceMock struct {
	ListCompaniesFunc  func(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error)
	GetCompanyFunc     func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	CreateCompanyFunc  func(ctx context.Context, input pipeline.CreateCompanyInput) (*domain.Company, error)
	UpdateCompanyFunc  func(ctx context.Context, input pipeline.UpdateCompanyInput) (*domain.Company, error)
	DeleteCompanyFunc  func(ctx context.Context, companyID uuid.UUID) error
	MoveStageFunc      func(ctx context.Context, companyID uuid.UUID, targetStageID uuid.UUID) (*domain.Company, error)
	AssignFunc         func(ctx context.Context, companyID uuid.UUID, analystID *uuid.UUID) (*domain.Company, error)
	RejectFunc         func(ctx context.Context, input pipeline.RejectInput) (*domain.RejectionRecord, error)
	GetRejectionFunc   func(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error)
	DraftRejectionFunc func(ctx context.Context, companyID uuid.UUID, categoryIDs []uuid.UUID) (*pipeline.RejectionDraft, error)
	ListActivityFunc   func(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error)

	calls struct {
		ListCompanies []struct {
			Ctx context.Context
			F   domain.CompanyFilter
		}
		GetCompany []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateCompany []struct {
			Ctx   context.Context
			Input pipeline.CreateCompanyInput
		}
		UpdateCompany []struct {
			Ctx   context.Context
			Input pipeline.UpdateCompanyInput
		}
		DeleteCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		MoveStage []struct {
			Ctx           context.Context
			CompanyID     uuid.UUID
			TargetStageID uuid.UUID
		}
		Assign []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			AnalystID *uuid.UUID
		}
		Reject []struct {
			Ctx   context.Context
			Input pipeline.RejectInput
		}
		GetRejection []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		DraftRejection []struct {
			Ctx         context.Context
			CompanyID   uuid.UUID
			CategoryIDs []uuid.UUID
		}
		ListActivity []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockListCompanies  sync.RWMutex
	lockGetCompany     sync.RWMutex
	lockCreateCompany  sync.RWMutex
	lockUpdateCompany  sync.RWMutex
	lockDeleteCompany  sync.RWMutex
	lockMoveStage      sync.RWMutex
	lockAssign         sync.RWMutex
	lockReject         sync.RWMutex
	lockGetRejection   sync.RWMutex
	lockDraftRejection sync.RWMutex
	lockListActivity   sync.RWMutex
}

func (mock *pipelineServiceMock) ListCompanies(ctx context.Context, f domain.CompanyFilter) ([]domain.Company, error) {
	if mock.ListCompaniesFunc == nil {
		panic("pipelineServiceMock.ListCompaniesFunc: method is nil but pipelineService.ListCompanies was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CompanyFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListCompanies.Lock()
	mock.calls.ListCompanies = append(mock.calls.ListCompanies, callInfo)
	mock.lockListCompanies.Unlock()
	return mock.ListCompaniesFunc(ctx, f)
}

func (mock *pipelineServiceMock) ListCompaniesCalls() []struct {
	Ctx context.Context
	F   domain.CompanyFilter
} {
	mock.lockListCompanies.RLock()
	calls := mock.calls.ListCompanies
	mock.lockListCompanies.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if mock.GetCompanyFunc == nil {
		panic("pipelineServiceMock.GetCompanyFunc: method is nil but pipelineService.GetCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetCompany.Lock()
	mock.calls.GetCompany = append(mock.calls.GetCompany, callInfo)
	mock.lockGetCompany.Unlock()
	return mock.GetCompanyFunc(ctx, id)
}

func (mock *pipelineServiceMock) GetCompanyCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetCompany.RLock()
	calls := mock.calls.GetCompany
	mock.lockGetCompany.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) CreateCompany(ctx context.Context, input pipeline.CreateCompanyInput) (*domain.Company, error) {
	if mock.CreateCompanyFunc == nil {
		panic("pipelineServiceMock.CreateCompanyFunc: method is nil but pipelineService.CreateCompany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.CreateCompanyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCompany.Lock()
	mock.calls.CreateCompany = append(mock.calls.CreateCompany, callInfo)
	mock.lockCreateCompany.Unlock()
	return mock.CreateCompanyFunc(ctx, input)
}

func (mock *pipelineServiceMock) CreateCompanyCalls() []struct {
	Ctx   context.Context
	Input pipeline.CreateCompanyInput
} {
	mock.lockCreateCompany.RLock()
	calls := mock.calls.CreateCompany
	mock.lockCreateCompany.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) UpdateCompany(ctx context.Context, input pipeline.UpdateCompanyInput) (*domain.Company, error) {
	if mock.UpdateCompanyFunc == nil {
		panic("pipelineServiceMock.UpdateCompanyFunc: method is nil but pipelineService.UpdateCompany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.UpdateCompanyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateCompany.Lock()
	mock.calls.UpdateCompany = append(mock.calls.UpdateCompany, callInfo)
	mock.lockUpdateCompany.Unlock()
	return mock.UpdateCompanyFunc(ctx, input)
}

func (mock *pipelineServiceMock) UpdateCompanyCalls() []struct {
	Ctx   context.Context
	Input pipeline.UpdateCompanyInput
} {
	mock.lockUpdateCompany.RLock()
	calls := mock.calls.UpdateCompany
	mock.lockUpdateCompany.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	if mock.DeleteCompanyFunc == nil {
		panic("pipelineServiceMock.DeleteCompanyFunc: method is nil but pipelineService.DeleteCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockDeleteCompany.Lock()
	mock.calls.DeleteCompany = append(mock.calls.DeleteCompany, callInfo)
	mock.lockDeleteCompany.Unlock()
	return mock.DeleteCompanyFunc(ctx, companyID)
}

func (mock *pipelineServiceMock) DeleteCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockDeleteCompany.RLock()
	calls := mock.calls.DeleteCompany
	mock.lockDeleteCompany.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) MoveStage(ctx context.Context, companyID uuid.UUID, targetStageID uuid.UUID) (*domain.Company, error) {
	if mock.MoveStageFunc == nil {
		panic("pipelineServiceMock.MoveStageFunc: method is nil but pipelineService.MoveStage was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		CompanyID     uuid.UUID
		TargetStageID uuid.UUID
	}{
		Ctx:           ctx,
		CompanyID:     companyID,
		TargetStageID: targetStageID,
	}
	mock.lockMoveStage.Lock()
	mock.calls.MoveStage = append(mock.calls.MoveStage, callInfo)
	mock.lockMoveStage.Unlock()
	return mock.MoveStageFunc(ctx, companyID, targetStageID)
}

func (mock *pipelineServiceMock) MoveStageCalls() []struct {
	Ctx           context.Context
	CompanyID     uuid.UUID
	TargetStageID uuid.UUID
} {
	mock.lockMoveStage.RLock()
	calls := mock.calls.MoveStage
	mock.lockMoveStage.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) Assign(ctx context.Context, companyID uuid.UUID, analystID *uuid.UUID) (*domain.Company, error) {
	if mock.AssignFunc == nil {
		panic("pipelineServiceMock.AssignFunc: method is nil but pipelineService.Assign was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		AnalystID *uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
		AnalystID: analystID,
	}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, companyID, analystID)
}

func (mock *pipelineServiceMock) AssignCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	AnalystID *uuid.UUID
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) Reject(ctx context.Context, input pipeline.RejectInput) (*domain.RejectionRecord, error) {
	if mock.RejectFunc == nil {
		panic("pipelineServiceMock.RejectFunc: method is nil but pipelineService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.RejectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, input)
}

func (mock *pipelineServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	Input pipeline.RejectInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) GetRejection(ctx context.Context, companyID uuid.UUID) (*domain.RejectionRecord, error) {
	if mock.GetRejectionFunc == nil {
		panic("pipelineServiceMock.GetRejectionFunc: method is nil but pipelineService.GetRejection was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockGetRejection.Lock()
	mock.calls.GetRejection = append(mock.calls.GetRejection, callInfo)
	mock.lockGetRejection.Unlock()
	return mock.GetRejectionFunc(ctx, companyID)
}

func (mock *pipelineServiceMock) GetRejectionCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockGetRejection.RLock()
	calls := mock.calls.GetRejection
	mock.lockGetRejection.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) DraftRejection(ctx context.Context, companyID uuid.UUID, categoryIDs []uuid.UUID) (*pipeline.RejectionDraft, error) {
	if mock.DraftRejectionFunc == nil {
		panic("pipelineServiceMock.DraftRejectionFunc: method is nil but pipelineService.DraftRejection was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		CompanyID   uuid.UUID
		CategoryIDs []uuid.UUID
	}{
		Ctx:         ctx,
		CompanyID:   companyID,
		CategoryIDs: categoryIDs,
	}
	mock.lockDraftRejection.Lock()
	mock.calls.DraftRejection = append(mock.calls.DraftRejection, callInfo)
	mock.lockDraftRejection.Unlock()
	return mock.DraftRejectionFunc(ctx, companyID, categoryIDs)
}

func (mock *pipelineServiceMock) DraftRejectionCalls() []struct {
	Ctx         context.Context
	CompanyID   uuid.UUID
	CategoryIDs []uuid.UUID
} {
	mock.lockDraftRejection.RLock()
	calls := mock.calls.DraftRejection
	mock.lockDraftRejection.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) ListActivity(ctx context.Context, companyID uuid.UUID) ([]domain.ActivityLog, error) {
	if mock.ListActivityFunc == nil {
		panic("pipelineServiceMock.ListActivityFunc: method is nil but pipelineService.ListActivity was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockListActivity.Lock()
	mock.calls.ListActivity = append(mock.calls.ListActivity, callInfo)
	mock.lockListActivity.Unlock()
	return mock.ListActivityFunc(ctx, companyID)
}

func (mock *pipelineServiceMock) ListActivityCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockListActivity.RLock()
	calls := mock.calls.ListActivity
	mock.lockListActivity.RUnlock()
	return calls
}
