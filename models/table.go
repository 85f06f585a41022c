package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TableAvailable   = "AVAILABLE"
	TableOccupied    = "OCCUPIED"
	TableReserved    = "RESERVED"
	TableMaintenance = "MAINTENANCE"
)

// Table is a physical seating unit. Its status tracks the lifecycle of the
// order currently assigned to it, if any.
type Table struct {
	ID             string    `gorm:"size:36;primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name" binding:"required"`
	Capacity       int       `json:"capacity"`
	Location       string    `gorm:"size:50" json:"location"`
	Status         string    `gorm:"size:20;default:'AVAILABLE'" json:"status"`
	CurrentOrderID *string   `gorm:"size:36" json:"current_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
