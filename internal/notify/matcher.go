package notify

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hireloop/hireloop-backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AlertMatcher evaluates a newly created job against all standing alerts and
// notifies each matching alert's owner. It is a best-effort side effect of
// job creation: every failure is logged, none is surfaced to the caller.
type AlertMatcher struct {
	db       *gorm.DB
	notifier Notifier
	logger   *zap.Logger
	limit    int
}

func NewAlertMatcher(db *gorm.DB, notifier Notifier, logger *zap.Logger, limit int) *AlertMatcher {
	if limit < 1 {
		limit = 1
	}
	return &AlertMatcher{db: db, notifier: notifier, logger: logger, limit: limit}
}

// Run matches the job snapshot against all alerts and fans out one send per
// match under a bounded group. A failed send never blocks or fails the
// others; the aggregate outcome is logged once per job.
func (m *AlertMatcher) Run(ctx context.Context, job models.Job) {
	var alerts []models.Alert
	err := m.db.WithContext(ctx).
		Preload("Owner").
		Where("role = ? AND location = ? AND min_salary <= ? AND max_salary >= ?",
			job.Title, job.Location, job.Salary, job.Salary).
		Find(&alerts).Error
	if err != nil {
		m.logger.Error("alert matching query failed", zap.Uint("job_id", job.ID), zap.Error(err))
		return
	}

	if len(alerts) == 0 {
		return
	}

	subject, body := renderNotification(job)

	var sent, failed atomic.Int64
	var group errgroup.Group
	group.SetLimit(m.limit)
	for _, alert := range alerts {
		to := alert.Owner.Email
		if to == "" {
			m.logger.Warn("alert owner has no email", zap.Uint("alert_id", alert.ID))
			continue
		}
		group.Go(func() error {
			if m.notifier.Send(to, subject, body) {
				sent.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = group.Wait()

	m.logger.Info("job alert fan-out finished",
		zap.Uint("job_id", job.ID),
		zap.Int("matched", len(alerts)),
		zap.Int64("sent", sent.Load()),
		zap.Int64("failed", failed.Load()),
	)
}

func renderNotification(job models.Job) (subject, body string) {
	subject = fmt.Sprintf("New Job Posting: %s", job.Title)
	body = fmt.Sprintf(`A new job matching your alert has been posted!
Job Title: %s
Company: %s
Location: %s
Salary: %.0f
Description: %s`,
		job.Title, job.Company.Name, job.Location, job.Salary, job.Description)
	return subject, body
}
