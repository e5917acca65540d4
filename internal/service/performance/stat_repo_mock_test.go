package performance

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

var _ statRepo = &statRepoMock{}

type statRepoMock struct {
	UpsertStatFunc func(ctx context.Context, userID uuid.UUID, stat domain.TopicStat) error
	GetStatFunc    func(ctx context.Context, userID uuid.UUID, topicID string) (*domain.TopicStat, error)
	ListStatsFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error)

	calls struct {
		UpsertStat []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Stat   domain.TopicStat
		}
		GetStat []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID string
		}
		ListStats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsertStat sync.RWMutex
	lockGetStat    sync.RWMutex
	lockListStats  sync.RWMutex
}

func (mock *statRepoMock) UpsertStat(ctx context.Context, userID uuid.UUID, stat domain.TopicStat) error {
	if mock.UpsertStatFunc == nil {
		panic("statRepoMock.UpsertStatFunc: method is nil but statRepo.UpsertStat was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Stat   domain.TopicStat
	}{Ctx: ctx, UserID: userID, Stat: stat}
	mock.lockUpsertStat.Lock()
	mock.calls.UpsertStat = append(mock.calls.UpsertStat, callInfo)
	mock.lockUpsertStat.Unlock()
	return mock.UpsertStatFunc(ctx, userID, stat)
}

func (mock *statRepoMock) UpsertStatCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Stat   domain.TopicStat
} {
	mock.lockUpsertStat.RLock()
	calls := mock.calls.UpsertStat
	mock.lockUpsertStat.RUnlock()
	return calls
}

func (mock *statRepoMock) GetStat(ctx context.Context, userID uuid.UUID, topicID string) (*domain.TopicStat, error) {
	if mock.GetStatFunc == nil {
		panic("statRepoMock.GetStatFunc: method is nil but statRepo.GetStat was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID string
	}{Ctx: ctx, UserID: userID, TopicID: topicID}
	mock.lockGetStat.Lock()
	mock.calls.GetStat = append(mock.calls.GetStat, callInfo)
	mock.lockGetStat.Unlock()
	return mock.GetStatFunc(ctx, userID, topicID)
}

func (mock *statRepoMock) GetStatCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID string
} {
	mock.lockGetStat.RLock()
	calls := mock.calls.GetStat
	mock.lockGetStat.RUnlock()
	return calls
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
