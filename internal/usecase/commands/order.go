package commands

import (
	"context"

	"splitpay/internal/domain/order"
	"splitpay/internal/infra"
	"splitpay/internal/pkg/errs"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOrderNotCancellable = errs.New("order can only be cancelled while ordering")

type OrderCommands interface {
	// CancelOrder withdraws an order before any payment has started.
	CancelOrder(ctx context.Context, orderID uuid.UUID) error
}

type orderCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewOrderCommands(uow shared.UnitOfWork) OrderCommands {
	return &orderCommandsImpl{uow: uow}
}

func (o *orderCommandsImpl) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// cancelled is reachable from ordering only; once a claim exists the
		// bill must be settled or left to expire.
		if order.Status(ord.Status) != order.StatusOrdering {
			return ErrOrderNotCancellable
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, order.StatusCancelled.String()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
