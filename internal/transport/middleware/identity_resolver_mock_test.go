package middleware

import (
	"context"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/team"
	"sync"
)

var _ identityResolver = &identityResolverMock{}

type identityResolverMock struct {
	ResolveFunc func(ctx context.Context, id team.Identity) (*domain.Profile, error)

	calls struct {
		Resolve []struct {
			Ctx context.Context
			Id  team.Identity
		}
	}
	lockResolve sync.RWMutex
}

func (mock *identityResolverMock) Resolve(ctx context.Context, id team.Identity) (*domain.Profile, error) {
	if mock.ResolveFunc == nil {
		panic("identityResolverMock.ResolveFunc: method is nil but identityResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  team.Identity
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id)
}

func (mock *identityResolverMock) ResolveCalls() []struct {
	Ctx context.Context
	Id  team.Identity
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
