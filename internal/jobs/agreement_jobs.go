package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders logs a reminder for every open agreement whose end
// date has passed without the vehicle coming back.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		agreements, err := jr.agreements.List(ctx)
		if err != nil {
			logger.Error("Failed to list agreements", "error", err)
			return
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		count := 0
		for i := range agreements {
			a := &agreements[i]
			end, err := time.Parse("2006-01-02", a.EndDate)
			if err != nil {
				// End dates are operator-supplied free text; skip what
				// cannot be parsed rather than failing the sweep.
				logger.Debug("Skipping agreement with unparseable end date", "agreement_id", a.ID, "end_date", a.EndDate)
				continue
			}
			if end.Before(today) {
				logger.Warn("Agreement overdue",
					"agreement_id", a.ID,
					"vehicle_id", a.VehicleID,
					"customer_id", a.CustomerID,
					"end_date", a.EndDate,
				)
				count++
			}
		}
		logger.Info("Overdue sweep finished", "overdue", count, "open_agreements", len(agreements))
	})
}
