package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	wallet  *MockSettlementMaturer
	errands *MockErrandExpirer
	pool    *MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &mocks{
		wallet:  NewMockSettlementMaturer(ctrl),
		errands: NewMockErrandExpirer(ctrl),
		pool:    NewMockWorkerPoolI(ctrl),
	}
	svc := &Service{
		wallet:      m.wallet,
		errands:     m.errands,
		workerPool:  m.pool,
		interval:    time.Minute,
		errandGrace: 48 * time.Hour,
	}
	return svc, m
}

// syncPool makes the mock pool run every submitted task inline so the
// guard map is settled by the time sweep returns.
func syncPool(m *mocks) {
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			return task()
		}).AnyTimes()
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	syncPool(m)

	m.wallet.EXPECT().MatureDue(ctx).Return(int64(2), nil)
	m.errands.EXPECT().ExpireOpen(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().Add(-48*time.Hour), cutoff, time.Second)
			return int64(1), nil
		})

	svc.sweep(ctx)

	_, matureRunning := runningTasks.Load(taskMature)
	_, expireRunning := runningTasks.Load(taskExpire)
	assert.False(t, matureRunning, "mature task should be released after the pass")
	assert.False(t, expireRunning, "expire task should be released after the pass")
}

func TestSweepTaskErrors(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	syncPool(m)

	m.wallet.EXPECT().MatureDue(ctx).Return(int64(0), assert.AnError)
	m.errands.EXPECT().ExpireOpen(ctx, gomock.Any()).Return(int64(0), assert.AnError)

	svc.sweep(ctx)

	_, matureRunning := runningTasks.Load(taskMature)
	_, expireRunning := runningTasks.Load(taskExpire)
	assert.False(t, matureRunning, "failed task must not stay marked as running")
	assert.False(t, expireRunning, "failed task must not stay marked as running")
}

func TestDispatchSkipsRunningTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := NewMock(t)

	runningTasks.Store(taskMature, struct{}{})
	defer runningTasks.Delete(taskMature)

	called := false
	err := svc.dispatch(ctx, taskMature, func(context.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.False(t, called, "in-flight task must not be dispatched again")
}

func TestDispatchPoolRejection(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)

	err := svc.dispatch(ctx, taskExpire, func(context.Context) error { return nil })
	assert.Error(t, err)

	_, stillRunning := runningTasks.Load(taskExpire)
	assert.False(t, stillRunning, "rejected task must release its guard")
}
