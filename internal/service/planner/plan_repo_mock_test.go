package planner

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	UpsertHeaderFunc   func(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	ReplaceTasksFunc   func(ctx context.Context, planID uuid.UUID, days []domain.PlanDay) error
	GetByUserIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error)
	SetTaskDoneFunc    func(ctx context.Context, taskID uuid.UUID, done bool) error
	DeleteByUserIDFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		UpsertHeader []struct {
			Ctx  context.Context
			Plan *domain.StudyPlan
		}
		ReplaceTasks []struct {
			Ctx    context.Context
			PlanID uuid.UUID
			Days   []domain.PlanDay
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SetTaskDone []struct {
			Ctx    context.Context
			TaskID uuid.UUID
			Done   bool
		}
		DeleteByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsertHeader   sync.RWMutex
	lockReplaceTasks   sync.RWMutex
	lockGetByUserID    sync.RWMutex
	lockSetTaskDone    sync.RWMutex
	lockDeleteByUserID sync.RWMutex
}

func (mock *planRepoMock) UpsertHeader(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	if mock.UpsertHeaderFunc == nil {
		panic("planRepoMock.UpsertHeaderFunc: method is nil but planRepo.UpsertHeader was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Plan *domain.StudyPlan
	}{Ctx: ctx, Plan: plan}
	mock.lockUpsertHeader.Lock()
	mock.calls.UpsertHeader = append(mock.calls.UpsertHeader, callInfo)
	mock.lockUpsertHeader.Unlock()
	return mock.UpsertHeaderFunc(ctx, plan)
}

func (mock *planRepoMock) UpsertHeaderCalls() []struct {
	Ctx  context.Context
	Plan *domain.StudyPlan
} {
	mock.lockUpsertHeader.RLock()
	calls := mock.calls.UpsertHeader
	mock.lockUpsertHeader.RUnlock()
	return calls
}

func (mock *planRepoMock) ReplaceTasks(ctx context.Context, planID uuid.UUID, days []domain.PlanDay) error {
	if mock.ReplaceTasksFunc == nil {
		panic("planRepoMock.ReplaceTasksFunc: method is nil but planRepo.ReplaceTasks was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
		Days   []domain.PlanDay
	}{Ctx: ctx, PlanID: planID, Days: days}
	mock.lockReplaceTasks.Lock()
	mock.calls.ReplaceTasks = append(mock.calls.ReplaceTasks, callInfo)
	mock.lockReplaceTasks.Unlock()
	return mock.ReplaceTasksFunc(ctx, planID, days)
}

func (mock *planRepoMock) ReplaceTasksCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
	Days   []domain.PlanDay
} {
	mock.lockReplaceTasks.RLock()
	calls := mock.calls.ReplaceTasks
	mock.lockReplaceTasks.RUnlock()
	return calls
}

func (mock *planRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error) {
	if mock.GetByUserIDFunc == nil {
		panic("planRepoMock.GetByUserIDFunc: method is nil but planRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *planRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *planRepoMock) SetTaskDone(ctx context.Context, taskID uuid.UUID, done bool) error {
	if mock.SetTaskDoneFunc == nil {
		panic("planRepoMock.SetTaskDoneFunc: method is nil but planRepo.SetTaskDone was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
		Done   bool
	}{Ctx: ctx, TaskID: taskID, Done: done}
	mock.lockSetTaskDone.Lock()
	mock.calls.SetTaskDone = append(mock.calls.SetTaskDone, callInfo)
	mock.lockSetTaskDone.Unlock()
	return mock.SetTaskDoneFunc(ctx, taskID, done)
}

func (mock *planRepoMock) SetTaskDoneCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
	Done   bool
} {
	mock.lockSetTaskDone.RLock()
	calls := mock.calls.SetTaskDone
	mock.lockSetTaskDone.RUnlock()
	return calls
}

func (mock *planRepoMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserIDFunc == nil {
		panic("planRepoMock.DeleteByUserIDFunc: method is nil but planRepo.DeleteByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *planRepoMock) DeleteByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}
