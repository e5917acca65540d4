package recommendation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

var (
	_ recRepo       = &recRepoMock{}
	_ statRepo      = &statRepoMock{}
	_ textGenerator = &textGeneratorMock{}
)

type recRepoMock struct {
	CreateFunc        func(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error)
	MarkCompletedFunc func(ctx context.Context, id, userID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.Recommendation
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.RecommendationFilter
		}
		MarkCompleted []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockListByUser    sync.RWMutex
	lockMarkCompleted sync.RWMutex
}

func (mock *recRepoMock) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if mock.CreateFunc == nil {
		panic("recRepoMock.CreateFunc: method is nil but recRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recommendation
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recommendation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error) {
	if mock.ListByUserFunc == nil {
		panic("recRepoMock.ListByUserFunc: method is nil but recRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.RecommendationFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, filter)
}

func (mock *recRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.RecommendationFilter
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *recRepoMock) MarkCompleted(ctx context.Context, id, userID uuid.UUID) error {
	if mock.MarkCompletedFunc == nil {
		panic("recRepoMock.MarkCompletedFunc: method is nil but recRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ID: id, UserID: userID}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, id, userID)
}

func (mock *recRepoMock) MarkCompletedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

type statRepoMock struct {
	ListStatsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error)

	calls struct {
		ListStats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListStats sync.RWMutex
}

func (mock *statRepoMock) ListStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error) {
	if mock.ListStatsFunc == nil {
		panic("statRepoMock.ListStatsFunc: method is nil but statRepo.ListStats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListStats.Lock()
	mock.calls.ListStats = append(mock.calls.ListStats, callInfo)
	mock.lockListStats.Unlock()
	return mock.ListStatsFunc(ctx, userID)
}

func (mock *statRepoMock) ListStatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListStats.RLock()
	calls := mock.calls.ListStats
	mock.lockListStats.RUnlock()
	return calls
}

type textGeneratorMock struct {
	GenerateContentFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		GenerateContent []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerateContent sync.RWMutex
}

func (mock *textGeneratorMock) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if mock.GenerateContentFunc == nil {
		panic("textGeneratorMock.GenerateContentFunc: method is nil but textGenerator.GenerateContent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerateContent.Lock()
	mock.calls.GenerateContent = append(mock.calls.GenerateContent, callInfo)
	mock.lockGenerateContent.Unlock()
	return mock.GenerateContentFunc(ctx, prompt)
}

func (mock *textGeneratorMock) GenerateContentCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerateContent.RLock()
	calls := mock.calls.GenerateContent
	mock.lockGenerateContent.RUnlock()
	return calls
}
