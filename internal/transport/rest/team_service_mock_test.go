package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/team"
	"sync"
)

var _ teamService = &teamServiceMock{}

type teamServiceMock struct {
	MeFunc         func(ctx context.Context) (*domain.Profile, error)
	ListTeamFunc   func(ctx context.Context) ([]domain.Profile, error)
	UpdateRoleFunc func(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error)
	InviteFunc     func(ctx context.Context, in team.InviteInput) (*team.Invitation, error)

	calls struct {
		Me []struct {
			Ctx context.Context
		}
		ListTeam []struct {
			Ctx context.Context
		}
		UpdateRole []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Role      domain.Role
		}
		Invite []struct {
			Ctx context.Context
			In  team.InviteInput
		}
	}
	lockMe         sync.RWMutex
	lockListTeam   sync.RWMutex
	lockUpdateRole sync.RWMutex
	lockInvite     sync.RWMutex
}

func (mock *teamServiceMock) Me(ctx context.Context) (*domain.Profile, error) {
	if mock.MeFunc == nil {
		panic("teamServiceMock.MeFunc: method is nil but teamService.Me was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *teamServiceMock) MeCalls() []struct{ Ctx context.Context } {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *teamServiceMock) ListTeam(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListTeamFunc == nil {
		panic("teamServiceMock.ListTeamFunc: method is nil but teamService.ListTeam was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListTeam.Lock()
	mock.calls.ListTeam = append(mock.calls.ListTeam, callInfo)
	mock.lockListTeam.Unlock()
	return mock.ListTeamFunc(ctx)
}

func (mock *teamServiceMock) ListTeamCalls() []struct{ Ctx context.Context } {
	mock.lockListTeam.RLock()
	calls := mock.calls.ListTeam
	mock.lockListTeam.RUnlock()
	return calls
}

func (mock *teamServiceMock) UpdateRole(ctx context.Context, profileID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if mock.UpdateRoleFunc == nil {
		panic("teamServiceMock.UpdateRoleFunc: method is nil but teamService.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Role      domain.Role
	}{
		Ctx:       ctx,
		ProfileID: profileID,
		Role:      role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, profileID, role)
}

func (mock *teamServiceMock) UpdateRoleCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Role      domain.Role
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *teamServiceMock) Invite(ctx context.Context, in team.InviteInput) (*team.Invitation, error) {
	if mock.InviteFunc == nil {
		panic("teamServiceMock.InviteFunc: method is nil but teamService.Invite was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  team.InviteInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockInvite.Lock()
	mock.calls.Invite = append(mock.calls.Invite, callInfo)
	mock.lockInvite.Unlock()
	return mock.InviteFunc(ctx, in)
}

func (mock *teamServiceMock) InviteCalls() []struct {
	Ctx context.Context
	In  team.InviteInput
} {
	mock.lockInvite.RLock()
	calls := mock.calls.Invite
	mock.lockInvite.RUnlock()
	return calls
}
