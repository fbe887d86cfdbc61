package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// manager is the implementation of the Manager interface.
type manager struct {
	mu     sync.Mutex
	logger zerolog.Logger

	models  []Model
	workers int
	pool    worker.DynamicWorkerPool
}

// Manager loads a set of models concurrently.
type Manager interface {
	// Add registers models to be loaded. Order is preserved for Models.
	//
	// Parameters:
	//   - models: the models to register
	Add(models ...Model)

	// Models returns the registered models.
	//
	// Returns:
	//   - []Model: the models in registration order
	Models() []Model

	// LoadAll loads every registered model on the worker pool and blocks until all finished.
	// Every model is attempted; failures are joined into one error.
	//
	// Parameters:
	//   - ctx: cancels loads that have not started yet
	//   - world: the node models attach to
	//
	// Returns:
	//   - error: nil, or the joined load errors each wrapped with the model name
	LoadAll(ctx context.Context, world scene.Node) error

	// Close stops the worker pool.
	Close()
}

var _ Manager = &manager{}

// NewManager creates a Manager with its own worker pool.
//
// Parameters:
//   - options: functional options to configure the manager
//
// Returns:
//   - Manager: the new manager
func NewManager(options ...ManagerBuilderOption) Manager {
	m := &manager{
		logger:  zerolog.Nop(),
		workers: 3,
	}
	for _, option := range options {
		option(m)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	m.pool = worker.NewDynamicWorkerPool(m.workers, 16, 1*time.Second)
	return m
}

func (m *manager) Add(models ...Model) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = append(m.models, models...)
}

func (m *manager) Models() []Model {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Model, len(m.models))
	copy(out, m.models)
	return out
}

func (m *manager) LoadAll(ctx context.Context, world scene.Node) error {
	models := m.Models()
	errs := make([]error, len(models))

	// The pool's own Wait depends on worker idle exits, so a WaitGroup is the barrier.
	var wg sync.WaitGroup
	for i, mdl := range models {
		wg.Add(1)
		idx, target := i, mdl
		m.pool.SubmitTask(worker.Task{
			ID:      idx,
			Payload: target.Name(),
			Do: func() (any, error) {
				defer wg.Done()
				start := time.Now()
				if err := target.Load(ctx, world); err != nil {
					errs[idx] = fmt.Errorf("load %s: %w", target.Name(), err)
					m.logger.Error().Err(err).Str("model", target.Name()).Msg("model load failed")
					return nil, err
				}
				m.logger.Info().Str("model", target.Name()).Dur("took", time.Since(start)).Msg("model ready")
				return target.Name(), nil
			},
		})
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (m *manager) Close() {
	m.pool.Stop()
}
