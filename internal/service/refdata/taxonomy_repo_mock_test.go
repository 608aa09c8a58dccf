package refdata

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"sync"
)

var _ taxonomyRepo = &taxonomyRepoMock{}

type taxonomyRepoMock struct {
	ListCategoriesFunc             func(ctx context.Context) ([]domain.RejectionCategory, error)
	CreateCategoryFunc             func(ctx context.Context, name string) (*domain.RejectionCategory, error)
	RenameCategoryFunc             func(ctx context.Context, id uuid.UUID, name string) error
	DeleteSubReasonsByCategoryFunc func(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteCategoryFunc             func(ctx context.Context, id uuid.UUID) error
	AddSubReasonFunc               func(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error)
	RenameSubReasonFunc            func(ctx context.Context, id uuid.UUID, name string) error
	DeleteSubReasonFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
		CreateCategory []struct {
			Ctx  context.Context
			Name string
		}
		RenameCategory []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Name string
		}
		DeleteSubReasonsByCategory []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
		}
		DeleteCategory []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		AddSubReason []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
			Name       string
		}
		RenameSubReason []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Name string
		}
		DeleteSubReason []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListCategories             sync.RWMutex
	lockCreateCategory             sync.RWMutex
	lockRenameCategory             sync.RWMutex
	lockDeleteSubReasonsByCategory sync.RWMutex
	lockDeleteCategory             sync.RWMutex
	lockAddSubReason               sync.RWMutex
	lockRenameSubReason            sync.RWMutex
	lockDeleteSubReason            sync.RWMutex
}

func (mock *taxonomyRepoMock) ListCategories(ctx context.Context) ([]domain.RejectionCategory, error) {
	if mock.ListCategoriesFunc == nil {
		panic("taxonomyRepoMock.ListCategoriesFunc: method is nil but taxonomyRepo.ListCategories was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *taxonomyRepoMock) ListCategoriesCalls() []struct{ Ctx context.Context } {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) CreateCategory(ctx context.Context, name string) (*domain.RejectionCategory, error) {
	if mock.CreateCategoryFunc == nil {
		panic("taxonomyRepoMock.CreateCategoryFunc: method is nil but taxonomyRepo.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, name)
}

func (mock *taxonomyRepoMock) CreateCategoryCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) RenameCategory(ctx context.Context, id uuid.UUID, name string) error {
	if mock.RenameCategoryFunc == nil {
		panic("taxonomyRepoMock.RenameCategoryFunc: method is nil but taxonomyRepo.RenameCategory was just called")
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
	mock.lockRenameCategory.Lock()
	mock.calls.RenameCategory = append(mock.calls.RenameCategory, callInfo)
	mock.lockRenameCategory.Unlock()
	return mock.RenameCategoryFunc(ctx, id, name)
}

func (mock *taxonomyRepoMock) RenameCategoryCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Name string
} {
	mock.lockRenameCategory.RLock()
	calls := mock.calls.RenameCategory
	mock.lockRenameCategory.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) DeleteSubReasonsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	if mock.DeleteSubReasonsByCategoryFunc == nil {
		panic("taxonomyRepoMock.DeleteSubReasonsByCategoryFunc: method is nil but taxonomyRepo.DeleteSubReasonsByCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockDeleteSubReasonsByCategory.Lock()
	mock.calls.DeleteSubReasonsByCategory = append(mock.calls.DeleteSubReasonsByCategory, callInfo)
	mock.lockDeleteSubReasonsByCategory.Unlock()
	return mock.DeleteSubReasonsByCategoryFunc(ctx, categoryID)
}

func (mock *taxonomyRepoMock) DeleteSubReasonsByCategoryCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
} {
	mock.lockDeleteSubReasonsByCategory.RLock()
	calls := mock.calls.DeleteSubReasonsByCategory
	mock.lockDeleteSubReasonsByCategory.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCategoryFunc == nil {
		panic("taxonomyRepoMock.DeleteCategoryFunc: method is nil but taxonomyRepo.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *taxonomyRepoMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) AddSubReason(ctx context.Context, categoryID uuid.UUID, name string) (*domain.RejectionSubReason, error) {
	if mock.AddSubReasonFunc == nil {
		panic("taxonomyRepoMock.AddSubReasonFunc: method is nil but taxonomyRepo.AddSubReason was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
		Name       string
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
		Name:       name,
	}
	mock.lockAddSubReason.Lock()
	mock.calls.AddSubReason = append(mock.calls.AddSubReason, callInfo)
	mock.lockAddSubReason.Unlock()
	return mock.AddSubReasonFunc(ctx, categoryID, name)
}

func (mock *taxonomyRepoMock) AddSubReasonCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
	Name       string
} {
	mock.lockAddSubReason.RLock()
	calls := mock.calls.AddSubReason
	mock.lockAddSubReason.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) RenameSubReason(ctx context.Context, id uuid.UUID, name string) error {
	if mock.RenameSubReasonFunc == nil {
		panic("taxonomyRepoMock.RenameSubReasonFunc: method is nil but taxonomyRepo.RenameSubReason was just called")
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
	mock.lockRenameSubReason.Lock()
	mock.calls.RenameSubReason = append(mock.calls.RenameSubReason, callInfo)
	mock.lockRenameSubReason.Unlock()
	return mock.RenameSubReasonFunc(ctx, id, name)
}

func (mock *taxonomyRepoMock) RenameSubReasonCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Name string
} {
	mock.lockRenameSubReason.RLock()
	calls := mock.calls.RenameSubReason
	mock.lockRenameSubReason.RUnlock()
	return calls
}

func (mock *taxonomyRepoMock) DeleteSubReason(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSubReasonFunc == nil {
		panic("taxonomyRepoMock.DeleteSubReasonFunc: method is nil but taxonomyRepo.DeleteSubReason was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteSubReason.Lock()
	mock.calls.DeleteSubReason = append(mock.calls.DeleteSubReason, callInfo)
	mock.lockDeleteSubReason.Unlock()
	return mock.DeleteSubReasonFunc(ctx, id)
}

func (mock *taxonomyRepoMock) DeleteSubReasonCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteSubReason.RLock()
	calls := mock.calls.DeleteSubReason
	mock.lockDeleteSubReason.RUnlock()
	return calls
}
