package jobs

import (
	"context"
	"fmt"
	"time"

	"smartlogi/internal/core/application/usecases/queries"
	"smartlogi/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StatusSummarizer is satisfied by queries.GetStatusSummaryQueryHandler.
type StatusSummarizer interface {
	Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error)
}

// StatusGauge is satisfied by *metrics.Metrics.
type StatusGauge interface {
	SetParcelsByStatus(statuses []string, counts map[string]int64)
}

const reportTimeout = 30 * time.Second

// StatusReportJob periodically counts parcels per status, logs the counts and
// publishes them as a gauge.
type StatusReportJob struct {
	summarizer StatusSummarizer
	gauge      StatusGauge
	schedule   string
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewStatusReportJob accepts standard cron expressions and descriptors such as
// "@every 1m".
func NewStatusReportJob(summarizer StatusSummarizer, gauge StatusGauge, schedule string, logger *zap.Logger) *StatusReportJob {
	return &StatusReportJob{
		summarizer: summarizer,
		gauge:      gauge,
		schedule:   schedule,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.Named("status_report_job"),
	}
}

func (j *StatusReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("status report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running report to finish.
func (j *StatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("status report job stopped")
}

func (j *StatusReportJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if err := j.Report(ctx); err != nil {
		j.logger.Error("status report failed", zap.Error(err))
	}
}

// Report runs one summary immediately.
func (j *StatusReportJob) Report(ctx context.Context) error {
	summary, err := j.summarizer.Handle(ctx, queries.NewGetStatusSummaryQuery())
	if err != nil {
		return err
	}

	statuses := make([]string, 0, len(parcel.Statuses()))
	counts := make(map[string]int64, len(summary))
	fields := make([]zap.Field, 0, len(summary)+1)
	for _, s := range parcel.Statuses() {
		statuses = append(statuses, s.String())
		counts[s.String()] = summary[s]
		fields = append(fields, zap.Int64(s.String(), summary[s]))
	}
	fields = append(fields, zap.Int64("total", summary.Total()))

	j.gauge.SetParcelsByStatus(statuses, counts)
	j.logger.Info("parcels by status", fields...)
	return nil
}
