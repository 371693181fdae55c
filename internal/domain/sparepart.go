package domain

import "time"

type SparePart struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	Quantity      int32     `json:"quantity"`
	MinQuantity   int32     `json:"min_quantity"`
	UnitCostCents int32     `json:"unit_cost_cents"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// LowStock reports whether the part is at or below its reorder threshold.
func (p *SparePart) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// MaintenancePart records spare parts consumed by a maintenance.
type MaintenancePart struct {
	MaintenanceID int32 `json:"maintenance_id"`
	SparePartID   int32 `json:"spare_part_id"`
	QuantityUsed  int32 `json:"quantity_used"`
}
