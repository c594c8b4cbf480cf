package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/PocketGarden_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// Entry is one scheduled job
type Entry struct {
	quit chan struct{}
	once sync.Once
}

// Stop cancels the entry. Safe to call more than once.
func (e *Entry) Stop() {
	e.once.Do(func() { close(e.quit) })
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A full worker queue
// skips that run rather than blocking the ticker.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) *Entry {
	e := &Entry{quit: make(chan struct{})}
	if interval <= 0 {
		e.Stop()
		return e
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-e.quit:
				return
			case <-s.quit:
				return
			}
		}
	}()
	return e
}

// Stop stops all scheduled jobs and waits for their goroutines
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
