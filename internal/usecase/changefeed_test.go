package usecase_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/usecase"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls int32
	d := usecase.NewDebouncer(50*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	}, zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Trigger()
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_SeparateWindowsFireSeparately(t *testing.T) {
	var calls int32
	d := usecase.NewDebouncer(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	}, zap.NewNop())

	d.Trigger()
	time.Sleep(80 * time.Millisecond)
	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	var calls int32
	d := usecase.NewDebouncer(time.Hour, func() {
		atomic.AddInt32(&calls, 1)
	}, zap.NewNop())

	d.Trigger()
	d.Flush()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_FlushWithoutEventsIsNoop(t *testing.T) {
	var calls int32
	d := usecase.NewDebouncer(time.Hour, func() {
		atomic.AddInt32(&calls, 1)
	}, zap.NewNop())

	d.Flush()

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls int32
	d := usecase.NewDebouncer(30*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	}, zap.NewNop())

	d.Trigger()
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
