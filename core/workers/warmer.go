// ABOUTME: Page warmer refills the CMS response cache in the background
// ABOUTME: Bounded worker pool fed with page paths after revalidation and at startup

package workers

import (
	"context"
	"strings"
	"sync"
	"time"

	"gameportal-api/core/domain"
	"gameportal-api/core/game"
	"gameportal-api/core/interfaces"
)

const (
	homePath       = "/"
	gamePathPrefix = "/game/"
)

// Portal is the part of the game portal the warmer renders pages through
type Portal interface {
	HomePage(ctx context.Context, opts domain.QueryOptions) domain.Result[game.HomePageView]
	GamePage(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[game.GamePageView]
}

// WorkerConfig holds configuration for the warmer pool
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// JobTimeout bounds a single page render
	JobTimeout time.Duration

	// SubmitTimeout is how long Submit waits for room in a full queue
	SubmitTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers:    2,
		QueueSize:     32,
		JobTimeout:    30 * time.Second,
		SubmitTimeout: 5 * time.Second,
	}
}

// PageWarmer renders pages off the request path so the next visitor hits a warm cache
type PageWarmer struct {
	portal Portal
	opts   domain.QueryOptions
	logger interfaces.Logger
	config WorkerConfig

	jobQueue chan string
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc

	// mu guards running and the queue against a concurrent Stop
	mu      sync.RWMutex
	running bool
}

// NewPageWarmer creates a warmer. opts is applied to every render.
func NewPageWarmer(portal Portal, opts domain.QueryOptions, logger interfaces.Logger, config WorkerConfig) *PageWarmer {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaults.JobTimeout
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = defaults.SubmitTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &PageWarmer{
		portal:   portal,
		opts:     opts,
		logger:   logger,
		config:   config,
		jobQueue: make(chan string, config.QueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the worker pool
func (w *PageWarmer) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.ctx.Err() != nil {
		return ErrWorkerStopped
	}

	for i := 0; i < w.config.MaxWorkers; i++ {
		w.wg.Add(1)
		go w.run()
	}

	w.running = true
	return nil
}

// Stop drains queued paths, waits for the workers and releases them. A stopped warmer
// cannot be restarted.
func (w *PageWarmer) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.jobQueue)
	w.wg.Wait()
	w.cancel()

	w.running = false
	return nil
}

// Submit queues one page path
func (w *PageWarmer) Submit(path string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.running {
		return ErrWorkerNotRunning
	}

	timer := time.NewTimer(w.config.SubmitTimeout)
	defer timer.Stop()

	select {
	case w.jobQueue <- path:
		return nil
	case <-timer.C:
		return ErrQueueFull
	}
}

// WarmPaths queues every path, logging the ones that could not be queued
func (w *PageWarmer) WarmPaths(paths ...string) {
	for _, path := range paths {
		if err := w.Submit(path); err != nil {
			w.logger.Warn("Failed to queue page warm-up", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}

func (w *PageWarmer) run() {
	defer w.wg.Done()

	for path := range w.jobQueue {
		w.warm(path)
	}
}

func (w *PageWarmer) warm(path string) {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.JobTimeout)
	defer cancel()

	start := time.Now()

	var err error
	switch {
	case path == homePath:
		err = w.portal.HomePage(ctx, w.opts).Err()
	case strings.HasPrefix(path, gamePathPrefix):
		err = w.portal.GamePage(ctx, strings.TrimPrefix(path, gamePathPrefix), w.opts).Err()
	default:
		w.logger.Debug("Skipping warm-up of non-game path", map[string]interface{}{
			"path": path,
		})
		return
	}

	if err != nil {
		w.logger.Warn("Page warm-up failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	w.logger.Debug("Page warmed", map[string]interface{}{
		"path":        path,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool has been stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
