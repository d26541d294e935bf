package repository

import (
	"context"
	"time"

	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
)

// NotificationRepository is an outbox: jobs are written in the same
// transaction as the ledger change and delivered by external consumers.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(
	ctx context.Context,
	dbtx db.DBTX,
	kind, topic string,
	payload []byte,
	runAt time.Time,
) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := dbtx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
