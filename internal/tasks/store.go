package tasks

import (
	"log/slog"
	"sync"
	"time"
)

// Store keeps the process-wide task map. Tasks are evicted once they have
// been terminal for longer than the retention window, so a long-running
// service does not accumulate finished tasks without bound.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*BatchTask

	retention time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewStore creates a store and starts its eviction janitor. retention <= 0
// disables eviction.
func NewStore(retention time.Duration) *Store {
	s := &Store{
		tasks:     make(map[string]*BatchTask),
		retention: retention,
		stop:      make(chan struct{}),
	}
	if retention > 0 {
		go s.janitor()
	}
	return s
}

// Get returns the task for id.
func (s *Store) Get(id string) (*BatchTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// Put registers a task.
func (s *Store) Put(task *BatchTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID()] = task
}

// Len returns the number of retained tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Close stops the eviction janitor.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) janitor() {
	ticker := time.NewTicker(s.retention / 4)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.evictExpired(now)
		}
	}
}

func (s *Store) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, task := range s.tasks {
		if task.expired(s.retention, now) {
			delete(s.tasks, id)
			slog.Debug("Evicted expired task", "task_id", id)
		}
	}
}
