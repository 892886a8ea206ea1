package service

import (
	"context"

	"employee-api/pkg/workerpool"
)

// AsyncService выполняет вызовы сервиса на пуле, чтобы медленная база
// не блокировала горутину, принимающую апдейты.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{
		Fn:      fn,
		ResultC: resCh,
	}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run is a typed wrapper over SubmitAsync.
func Run[T any](ctx context.Context, a *AsyncService, fn func() (T, error)) (T, error) {
	v, err := a.SubmitAsync(ctx, func() (any, error) { return fn() })
	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := v.(T)
	return t, nil
}
