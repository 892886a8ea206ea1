package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_DeliversResult(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	defer pool.Close()

	resCh := make(chan Result, 1)
	err := pool.Submit(context.Background(), Task{
		Fn:      func() (any, error) { return 42, nil },
		ResultC: resCh,
	})
	require.NoError(t, err)

	res := <-resCh
	require.NoError(t, res.Err)
	assert.Equal(t, 42, res.Value)
}

func TestClose_DrainsQueue(t *testing.T) {
	pool := NewWorkerPool(1, 16)

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, pool.Submit(context.Background(), Task{
			Fn: func() (any, error) {
				done.Add(1)
				return nil, nil
			},
		}))
	}
	pool.Close()

	assert.Equal(t, int32(10), done.Load())
}

func TestSubmit_AfterClose(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	pool.Close()
	pool.Close()

	err := pool.Submit(context.Background(), Task{Fn: func() (any, error) { return nil, nil }})
	assert.True(t, errors.Is(err, ErrPoolClosed))
}

func TestSubmit_RespectsContext(t *testing.T) {
	pool := NewWorkerPool(1, 0)
	defer pool.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), Task{
		Fn: func() (any, error) {
			close(started)
			<-release
			return nil, nil
		},
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, Task{Fn: func() (any, error) { return nil, nil }})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	close(release)
}
