package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ListReconciliationJob repairs the per-user parcel lists in the background.
// Parcel creation registers the parcel on the sender's and receiver's lists
// after the creation transaction commits, so a crash between the commit and
// the registrations can leave a link missing. The job re-derives every link
// from the parcels table; existing links are untouched.
type ListReconciliationJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewListReconciliationJob creates a job that repairs user parcel lists.
func NewListReconciliationJob(db *gorm.DB, logger *slog.Logger) *ListReconciliationJob {
	return &ListReconciliationJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "list_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *ListReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		if err := j.reconcile(ctx); err != nil {
			j.logger.ErrorContext(ctx, "List reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "List reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ListReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "List reconciliation job stopped")
}

func (j *ListReconciliationJob) reconcile(ctx context.Context) error {
	result := j.db.WithContext(ctx).Exec(`
		INSERT INTO user_parcels (user_id, parcel_id)
		SELECT sender_id, id FROM parcels
		UNION
		SELECT receiver_id, id FROM parcels
		ON CONFLICT DO NOTHING`)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		j.logger.InfoContext(ctx, "Repaired missing user parcel links",
			"count", result.RowsAffected)
	}

	return nil
}
