package jobs

import (
	"context"
	"errors"
	"log/slog"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// reconciliationBatchSize caps how many stuck payments one tick inspects,
// so a backlog never turns a tick into a long-running gateway storm.
const reconciliationBatchSize = 50

// PaymentReconciliationJob periodically settles orders whose charge was
// started but whose final state never arrived, typically because a webhook
// was lost. Runs every minute: for each order with a pending payment and a
// recorded gateway payment ID, it asks the gateway for the charge's current
// state and applies any terminal answer through the reconcile command.
type PaymentReconciliationJob struct {
	db      *gorm.DB
	gateway ports.PaymentGateway
	handler commands.ReconcilePaymentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReconciliationJob creates the job. The database handle is used
// read-only to find candidates; all writes go through the command handler.
func NewPaymentReconciliationJob(
	db *gorm.DB,
	gateway ports.PaymentGateway,
	handler commands.ReconcilePaymentCommandHandler,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		db:      db,
		gateway: gateway,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.runOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}

type stuckPaymentRow struct {
	ID        uuid.UUID
	PaymentID string
}

func (j *PaymentReconciliationJob) runOnce(ctx context.Context) error {
	var rows []stuckPaymentRow
	result := j.db.WithContext(ctx).Raw(
		`SELECT id, payment_id FROM orders
		 WHERE payment_status = ? AND payment_id IS NOT NULL AND payment_id <> ''
		 ORDER BY updated_at ASC
		 LIMIT ?`,
		order.PaymentPending.String(), reconciliationBatchSize,
	).Scan(&rows)
	if result.Error != nil {
		return result.Error
	}

	for _, row := range rows {
		if err := j.reconcileOne(ctx, row); err != nil {
			j.logger.ErrorContext(ctx, "Failed to reconcile payment",
				"orderId", row.ID.String(), "paymentId", row.PaymentID, "error", err)
		}
	}

	return nil
}

func (j *PaymentReconciliationJob) reconcileOne(ctx context.Context, row stuckPaymentRow) error {
	status, err := j.gateway.PaymentStatus(ctx, row.PaymentID)
	if err != nil {
		// A flaky gateway is not actionable here; the next tick retries.
		if errors.Is(err, errs.ErrUpstreamUnavailable) {
			return nil
		}
		return err
	}

	// Still pending on the gateway side as well: nothing to settle yet.
	if status == order.PaymentPending {
		return nil
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return err
	}

	paymentID := row.PaymentID
	cmd, err := commands.NewReconcilePaymentCommand(orderID, status, &paymentID, kernel.RoleGateway)
	if err != nil {
		return err
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		// Lost a race with a concurrently arriving webhook; the order is settled.
		if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrAlreadyFinalized) {
			return nil
		}
		return err
	}

	j.logger.InfoContext(ctx, "Settled stuck payment",
		"orderId", row.ID.String(), "paymentId", row.PaymentID, "status", status.String())
	return nil
}
