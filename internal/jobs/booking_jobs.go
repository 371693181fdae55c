package jobs

import (
	"context"
	"fmt"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/logger"
)

// MarkOverdueBookings notifies holders of active bookings whose end date has
// passed. The booking stays active until the tool is actually checked in;
// only the notice goes out.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() error {
		ctx := context.Background()

		overdue, err := jr.store.BookingRepository.ListActivePastEnd(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("list overdue bookings: %w", err)
		}

		notified := 0
		for i := range overdue {
			booking := &overdue[i]
			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load user for overdue notice", "user_id", booking.UserID, "error", err)
				continue
			}
			tool, err := jr.store.ToolRepository.GetByID(ctx, booking.ToolID)
			if err != nil {
				logger.Error("Failed to load tool for overdue notice", "tool_id", booking.ToolID, "error", err)
				continue
			}

			note := &domain.Notification{
				UserID:  user.ID,
				Title:   "Tool overdue",
				Message: fmt.Sprintf("%s was due back on %s", tool.Name, booking.EndDate.Format("2006-01-02")),
				Attributes: map[string]string{
					"type":       "overdue",
					"booking_id": fmt.Sprintf("%d", booking.ID),
					"tool_id":    fmt.Sprintf("%d", booking.ToolID),
				},
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create overdue notification", "booking_id", booking.ID, "error", err)
			}
			if err := jr.services.Email.SendOverdueNotice(ctx, user.Email, tool.Name, booking.EndDate); err != nil {
				logger.Error("Failed to send overdue email", "to", user.Email, "error", err)
				continue
			}
			notified++
		}

		logger.Info("Overdue booking notices sent", "overdue", len(overdue), "notified", notified)
		return nil
	})
}
