package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolClosed = errors.New("workerpool: closed")

// Task описывает универсальную задачу для пула.
// Fn должен быть безопасен для конкурентного выполнения,
// ResultC получает результат, если он нужен.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	once   sync.Once
}

// NewWorkerPool создаёт пул с N воркерами
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	wp := &WorkerPool{
		tasks: make(chan Task, queueSize),
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		res, err := task.Fn()
		if task.ResultC != nil {
			task.ResultC <- Result{Value: res, Err: err}
		}
	}
}

// Submit ставит задачу в очередь. Блокируется, пока очередь полна,
// либо до отмены ctx.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}
	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close перестаёт принимать задачи и ждёт, пока воркеры доработают очередь.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
		wp.wg.Wait()
	})
}
