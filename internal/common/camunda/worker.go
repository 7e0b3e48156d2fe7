// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

// Manager registers job workers and closes them on shutdown.
type Manager struct {
	client  zbc.Client
	workers []worker.JobWorker
	logger  *zap.Logger
}

func NewManager(client zbc.Client, log *zap.Logger) *Manager {
	return &Manager{client: client, logger: log}
}

// Register opens a job worker for the task type.
func (m *Manager) Register(taskType string, maxJobsActive int, timeout time.Duration, handler worker.JobHandler) {
	w := m.client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(maxJobsActive).
		Timeout(timeout).
		Open()
	m.workers = append(m.workers, w)
	m.logger.Info("worker registered",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", maxJobsActive),
		zap.Duration("timeout", timeout),
	)
}

// Close stops all registered workers.
func (m *Manager) Close() {
	for _, w := range m.workers {
		w.Close()
	}
	m.logger.Info("all workers stopped")
}
