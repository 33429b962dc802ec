package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager starts and stops the scheduled jobs of the service.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

func NewJobManager(
	counter OrderCounter,
	backlogGauge *prometheus.GaugeVec,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderBacklogJob: NewOrderBacklogJob(counter, backlogGauge, backlogSchedule, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
