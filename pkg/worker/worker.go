package worker

import (
	"context"
	"sync"

	"github.com/VladPetriv/currency_names/pkg/logger"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// Pool is a worker pool.
// Jobs with an ID that is already queued or in progress are skipped.
type Pool[T any] struct {
	logger       *logger.Logger
	workersCount int
	handlerFunc  Func[T]
	jobs         chan job[T]
	wg           *sync.WaitGroup
	dedup        map[string]struct{}
	mu           *sync.Mutex
}

// NewPool creates a new worker pool.
func NewPool[T any](logger *logger.Logger, workersCount int, handlerFunc Func[T]) *Pool[T] {
	if workersCount < 1 {
		workersCount = 1
	}

	return &Pool[T]{
		logger:       logger,
		workersCount: workersCount,
		handlerFunc:  handlerFunc,
		jobs:         make(chan job[T]),
		wg:           &sync.WaitGroup{},
		dedup:        make(map[string]struct{}),
		mu:           &sync.Mutex{},
	}
}

// Start starts the number of workers that were passed in constructor.
func (p *Pool[T]) Start(ctx context.Context) {
	for range p.workersCount {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Err(ctx.Err()).Msg("worker stopping due to context cancellation")
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				p.logger.Error().Err(err).Str("jobID", job.ID).Msg("handle job")
			}
			p.mu.Lock()
			delete(p.dedup, job.ID)
			p.mu.Unlock()
		}
	}
}

// Stop stops the worker pool and waits for the running jobs.
func (p *Pool[T]) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// AddJob adds a new job to the worker pool.
// It blocks until a worker takes the job or ctx is done.
func (p *Pool[T]) AddJob(ctx context.Context, id string, data T) {
	p.mu.Lock()
	_, ok := p.dedup[id]
	if ok {
		p.mu.Unlock()
		return
	}
	p.dedup[id] = struct{}{}
	p.mu.Unlock()

	select {
	case p.jobs <- job[T]{ID: id, Data: data}:
	case <-ctx.Done():
		p.mu.Lock()
		delete(p.dedup, id)
		p.mu.Unlock()
	}
}
