package jobs

import (
	"context"
	"log/slog"

	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

const DefaultBacklogSchedule = "@every 1m"

type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

// OrderBacklogJob periodically reports how many orders sit in each status.
// It only reads.
type OrderBacklogJob struct {
	counter  OrderCounter
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob accepts any robfig/cron schedule, including descriptors
// such as "@every 30s". An empty schedule falls back to DefaultBacklogSchedule.
func NewOrderBacklogJob(counter OrderCounter, gauge *prometheus.GaugeVec, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order backlog job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order backlog job stopped")
}

// Run produces one report.
func (j *OrderBacklogJob) Run(ctx context.Context) {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(counts))
	for _, status := range []order.Status{order.Pending, order.OnGoing, order.Finished, order.Canceled} {
		n := counts[status]
		if j.gauge != nil {
			j.gauge.WithLabelValues(status.String()).Set(float64(n))
		}
		attrs = append(attrs, status.String(), n)
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
}
