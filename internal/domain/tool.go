package domain

import "time"

type ToolCondition string

const (
	ToolConditionNew  ToolCondition = "new"
	ToolConditionGood ToolCondition = "good"
	ToolConditionFair ToolCondition = "fair"
	ToolConditionPoor ToolCondition = "poor"
)

// ToolStatus is the derived availability classification of a tool. It is
// never persisted; it is recomputed from the tool's bookings and
// maintenances on every read.
type ToolStatus string

const (
	ToolStatusAvailable     ToolStatus = "available"
	ToolStatusInUse         ToolStatus = "in_use"
	ToolStatusBooked        ToolStatus = "booked"
	ToolStatusInMaintenance ToolStatus = "in_maintenance"
)

type Tool struct {
	ID          int32         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Condition   ToolCondition `json:"condition"`
	OwnerID     *int32        `json:"owner_id,omitempty"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
	DeletedOn   *time.Time    `json:"deleted_on,omitempty"`
}

// ToolView is a tool augmented with its derived status, as returned by the
// read path.
type ToolView struct {
	Tool
	Status          ToolStatus `json:"status"`
	ActiveBookingID *int32     `json:"active_booking_id,omitempty"`
}
