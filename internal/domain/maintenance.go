package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusRequested  MaintenanceStatus = "requested"
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

type Maintenance struct {
	ID          int32             `json:"id"`
	ToolID      int32             `json:"tool_id"`
	Description string            `json:"description"`
	CostCents   *int32            `json:"cost_cents,omitempty"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Status      MaintenanceStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

// Window returns the service interval. A maintenance without an end date
// collapses to [StartDate, StartDate).
func (m *Maintenance) Window() (time.Time, time.Time) {
	if m.EndDate == nil {
		return m.StartDate, m.StartDate
	}
	return m.StartDate, *m.EndDate
}
