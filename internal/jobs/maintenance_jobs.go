package jobs

import (
	"context"
	"fmt"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/logger"
)

// SendMaintenanceReminders tells admins and managers about maintenances
// scheduled to start within the next 24 hours.
func (jr *JobRunner) SendMaintenanceReminders() {
	jr.runWithRecovery("SendMaintenanceReminders", func() error {
		ctx := context.Background()
		now := time.Now().UTC()

		upcoming, err := jr.store.MaintenanceRepository.ListScheduledBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			return fmt.Errorf("list upcoming maintenances: %w", err)
		}
		if len(upcoming) == 0 {
			logger.Info("No maintenances starting in the next 24 hours")
			return nil
		}

		recipients, err := jr.listPrivilegedUsers(ctx)
		if err != nil {
			return err
		}

		for i := range upcoming {
			m := &upcoming[i]
			tool, err := jr.store.ToolRepository.GetByID(ctx, m.ToolID)
			if err != nil {
				logger.Error("Failed to load tool for maintenance reminder", "tool_id", m.ToolID, "error", err)
				continue
			}
			for j := range recipients {
				if err := jr.services.Email.SendMaintenanceReminder(ctx, recipients[j].Email, tool.Name, m.Description, m.StartDate); err != nil {
					logger.Error("Failed to send maintenance reminder", "to", recipients[j].Email, "error", err)
				}
			}
		}

		logger.Info("Maintenance reminders sent", "maintenances", len(upcoming), "recipients", len(recipients))
		return nil
	})
}

func (jr *JobRunner) listPrivilegedUsers(ctx context.Context) ([]domain.User, error) {
	admins, err := jr.store.UserRepository.ListByRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	managers, err := jr.store.UserRepository.ListByRole(ctx, domain.UserRoleManager)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return append(admins, managers...), nil
}
