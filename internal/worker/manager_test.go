package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/worker"
)

type loopWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func newLoopWorker(name string) *loopWorker {
	return &loopWorker{BaseWorker: worker.NewBaseWorker(name, "group", zap.NewNop())}
}

func (w *loopWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	for w.Sleep(ctx, 10*time.Millisecond) {
	}
	return nil
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), time.Second)
	a, b := newLoopWorker("a"), newLoopWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool { return a.started.Load() && b.started.Load() }, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	w := &stuckWorker{
		BaseWorker: worker.NewBaseWorker("stuck", "group", zap.NewNop()),
		release:    make(chan struct{}),
	}
	defer close(w.release)

	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	assert.Error(t, err)
}

func TestBaseWorker(t *testing.T) {
	w := worker.NewBaseWorker("receipts", "loyalty-workers", zap.NewNop())
	assert.Equal(t, "receipts", w.Name())
	assert.Equal(t, "loyalty-workers", w.ConsumerGroup())
	assert.NotEmpty(t, w.ConsumerName())

	assert.True(t, w.Sleep(context.Background(), time.Millisecond))

	require.NoError(t, w.Stop())
	assert.False(t, w.Sleep(context.Background(), time.Hour), "stopped worker does not sleep")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w2 := worker.NewBaseWorker("x", "g", zap.NewNop())
	assert.False(t, w2.Sleep(ctx, time.Hour))
}
