package repository

import (
	"context"
	"time"

	"splitpay/internal/infra"
	"splitpay/internal/infra/db"

	"github.com/google/uuid"
)

// ProcessorEventRepository records every inbound processor notification by
// its reference. The primary key on processor_ref is what makes redelivered
// notifications detectable.
type ProcessorEventRepository struct{}

func NewProcessorEventRepository() *ProcessorEventRepository {
	return &ProcessorEventRepository{}
}

func (r *ProcessorEventRepository) TryInsert(
	ctx context.Context,
	dbtx db.DBTX,
	processorRef string,
	claimID uuid.UUID,
	outcome string,
	receivedAt time.Time,
) error {
	const query = `
		INSERT INTO processor_events (processor_ref, claim_id, outcome, received_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (processor_ref) DO NOTHING`

	tag, err := dbtx.Exec(ctx, query, processorRef, claimID, outcome, receivedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record processor event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("processor event already recorded", nil, infra.KindDuplicateKey)
	}
	return nil
}
