package jobs

import (
	"context"
	"fmt"

	"toolkeeper-backend/internal/logger"
)

// SendLowStockReport mails managers a digest of spare parts at or below
// their minimum quantity.
func (jr *JobRunner) SendLowStockReport() {
	jr.runWithRecovery("SendLowStockReport", func() error {
		ctx := context.Background()

		parts, err := jr.store.SparePartRepository.ListBelowMinimum(ctx)
		if err != nil {
			return fmt.Errorf("list low stock parts: %w", err)
		}
		if len(parts) == 0 {
			logger.Info("All spare parts above minimum stock")
			return nil
		}

		recipients, err := jr.listPrivilegedUsers(ctx)
		if err != nil {
			return err
		}
		for i := range recipients {
			if err := jr.services.Email.SendLowStockAlert(ctx, recipients[i].Email, parts); err != nil {
				logger.Error("Failed to send low stock report", "to", recipients[i].Email, "error", err)
			}
		}

		logger.Info("Low stock report sent", "parts", len(parts), "recipients", len(recipients))
		return nil
	})
}
