package jobs

import (
	"context"
	"log/slog"

	"cakeshop/internal/core/application/usecases/queries"
	"cakeshop/internal/dashboards"

	"github.com/robfig/cron/v3"
)

// SalesReportJob periodically logs the shop's sales summary and persists the
// sales dashboard snapshot to disk. Runs every minute.
type SalesReportJob struct {
	handler      queries.GetSalesSummaryQueryHandler
	dashboard    *dashboards.SalesDashboard
	snapshotPath string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewSalesReportJob creates a new sales reporting job. The dashboard snapshot
// is written to snapshotPath on every run; an empty path disables snapshots.
func NewSalesReportJob(
	handler queries.GetSalesSummaryQueryHandler,
	dashboard *dashboards.SalesDashboard,
	snapshotPath string,
	logger *slog.Logger,
) *SalesReportJob {
	return &SalesReportJob{
		handler:      handler,
		dashboard:    dashboard,
		snapshotPath: snapshotPath,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "sales_report_job"),
	}
}

// Start begins the sales report job to run every minute.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetSalesSummaryQuery()

		summary, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Sales summary",
			"total_orders", summary.TotalOrders,
			"total_revenue", summary.TotalRevenue.StringFixed(2),
			"categories", len(summary.Categories),
		)

		if j.snapshotPath == "" {
			return
		}

		if saveErr := j.dashboard.SaveSnapshot(j.snapshotPath); saveErr != nil {
			j.logger.ErrorContext(ctx, "Failed to save dashboard snapshot",
				"path", j.snapshotPath, "error", saveErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running every minute)")
	return nil
}

// Stop stops the sales report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
