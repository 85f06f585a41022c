package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MovementIn  = "IN"
	MovementOut = "OUT"
)

const (
	ReferencePurchase   = "PURCHASE"
	ReferenceRecipe     = "RECIPE"
	ReferenceWaste      = "WASTE"
	ReferenceAdjustment = "ADJUSTMENT"
)

// InventoryMovement is an append-only ledger entry recording stock entering
// or leaving inventory for a product. Movements do not mutate Product.Stock;
// stock reconciliation is a manual step done by staff.
type InventoryMovement struct {
	ID            string    `gorm:"size:36;primaryKey" json:"id"`
	ProductID     string    `gorm:"size:36;index;not null" json:"product_id"`
	Type          string    `gorm:"size:10;not null" json:"type"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	Reason        string    `gorm:"not null" json:"reason"`
	ReferenceType string    `gorm:"size:20" json:"reference_type,omitempty"`
	ReferenceID   string    `gorm:"size:36" json:"reference_id,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	UserID        string    `gorm:"size:36" json:"user_id"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (m *InventoryMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ValidMovementType reports whether t is IN or OUT.
func ValidMovementType(t string) bool {
	return t == MovementIn || t == MovementOut
}

// ValidReferenceType reports whether rt is a known movement reference.
func ValidReferenceType(rt string) bool {
	switch rt {
	case ReferencePurchase, ReferenceRecipe, ReferenceWaste, ReferenceAdjustment:
		return true
	}
	return false
}
