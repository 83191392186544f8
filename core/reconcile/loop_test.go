package reconcile

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCycler struct {
	calls  atomic.Int32
	onCall func(n int32)
}

func (c *countingCycler) Reconcile(ctx context.Context) *Report {
	n := c.calls.Add(1)
	if c.onCall != nil {
		c.onCall(n)
	}
	return &Report{Outcome: OutcomeNoChange}
}

func TestLoop_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cycler := &countingCycler{}
	cycler.onCall = func(n int32) {
		if n == 3 {
			cancel()
		}
	}

	loop := NewLoop(cycler, time.Millisecond, nil)
	err := loop.Run(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), cycler.calls.Load())
}

func TestLoop_CancelInterruptsSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cycler := &countingCycler{}
	loop := NewLoop(cycler, time.Hour, nil)

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool { return cycler.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, int32(1), cycler.calls.Load())
}

func TestLoop_TriggerCutsSleepShort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cycler := &countingCycler{}
	loop := NewLoop(cycler, time.Hour, nil)

	go func() { _ = loop.Run(ctx) }()
	require.Eventually(t, func() bool { return cycler.calls.Load() == 1 }, time.Second, time.Millisecond)

	assert.True(t, loop.Trigger())
	require.Eventually(t, func() bool { return cycler.calls.Load() == 2 }, time.Second, time.Millisecond)
}

func TestLoop_TriggersCoalesce(t *testing.T) {
	loop := NewLoop(&countingCycler{}, time.Hour, nil)

	assert.True(t, loop.Trigger())
	assert.False(t, loop.Trigger())
	assert.False(t, loop.Trigger())
}
