package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

var _ authMethodRepo = &authMethodRepoMock{}

type authMethodRepoMock struct {
	CreateFunc             func(ctx context.Context, method *domain.AuthMethod) (*domain.AuthMethod, error)
	GetByUserAndMethodFunc func(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	UpdatePasswordHashFunc func(ctx context.Context, userID uuid.UUID, hash string) (*domain.AuthMethod, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Method *domain.AuthMethod
		}
		GetByUserAndMethod []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Method domain.AuthMethodType
		}
		UpdatePasswordHash []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Hash   string
		}
	}
	lockCreate             sync.RWMutex
	lockGetByUserAndMethod sync.RWMutex
	lockUpdatePasswordHash sync.RWMutex
}

func (mock *authMethodRepoMock) Create(ctx context.Context, method *domain.AuthMethod) (*domain.AuthMethod, error) {
	if mock.CreateFunc == nil {
		panic("authMethodRepoMock.CreateFunc: method is nil but authMethodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Method *domain.AuthMethod
	}{Ctx: ctx, Method: method}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, method)
}

func (mock *authMethodRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Method *domain.AuthMethod
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *authMethodRepoMock) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	if mock.GetByUserAndMethodFunc == nil {
		panic("authMethodRepoMock.GetByUserAndMethodFunc: method is nil but authMethodRepo.GetByUserAndMethod was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Method domain.AuthMethodType
	}{Ctx: ctx, UserID: userID, Method: method}
	mock.lockGetByUserAndMethod.Lock()
	mock.calls.GetByUserAndMethod = append(mock.calls.GetByUserAndMethod, callInfo)
	mock.lockGetByUserAndMethod.Unlock()
	return mock.GetByUserAndMethodFunc(ctx, userID, method)
}

func (mock *authMethodRepoMock) GetByUserAndMethodCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Method domain.AuthMethodType
} {
	mock.lockGetByUserAndMethod.RLock()
	calls := mock.calls.GetByUserAndMethod
	mock.lockGetByUserAndMethod.RUnlock()
	return calls
}

func (mock *authMethodRepoMock) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) (*domain.AuthMethod, error) {
	if mock.UpdatePasswordHashFunc == nil {
		panic("authMethodRepoMock.UpdatePasswordHashFunc: method is nil but authMethodRepo.UpdatePasswordHash was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Hash   string
	}{Ctx: ctx, UserID: userID, Hash: hash}
	mock.lockUpdatePasswordHash.Lock()
	mock.calls.UpdatePasswordHash = append(mock.calls.UpdatePasswordHash, callInfo)
	mock.lockUpdatePasswordHash.Unlock()
	return mock.UpdatePasswordHashFunc(ctx, userID, hash)
}

func (mock *authMethodRepoMock) UpdatePasswordHashCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Hash   string
} {
	mock.lockUpdatePasswordHash.RLock()
	calls := mock.calls.UpdatePasswordHash
	mock.lockUpdatePasswordHash.RUnlock()
	return calls
}
