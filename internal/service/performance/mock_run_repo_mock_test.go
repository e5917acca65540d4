package performance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

var _ mockRunRepo = &mockRunRepoMock{}

type mockRunRepoMock struct {
	CreateFunc     func(ctx context.Context, run *domain.MockRun) (*domain.MockRun, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Run *domain.MockRun
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.MockRunFilter
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *mockRunRepoMock) Create(ctx context.Context, run *domain.MockRun) (*domain.MockRun, error) {
	if mock.CreateFunc == nil {
		panic("mockRunRepoMock.CreateFunc: method is nil but mockRunRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Run *domain.MockRun
	}{Ctx: ctx, Run: run}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, run)
}

func (mock *mockRunRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Run *domain.MockRun
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mockRunRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error) {
	if mock.ListByUserFunc == nil {
		panic("mockRunRepoMock.ListByUserFunc: method is nil but mockRunRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.MockRunFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, filter)
}

func (mock *mockRunRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.MockRunFilter
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
