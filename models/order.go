package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// OrderStatuses lists every status an order may carry. Transitions between
// them are not restricted; the kitchen workflow moves orders freely.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderPreparing,
	OrderReady, OrderDelivered, OrderCancelled,
}

// Item statuses follow the kitchen flow of a single line item.
const (
	ItemPending   = "PENDING"
	ItemPreparing = "PREPARING"
	ItemReady     = "READY"
	ItemDelivered = "DELIVERED"
)

var ItemStatuses = []string{ItemPending, ItemPreparing, ItemReady, ItemDelivered}

// OrderItem is one line of an order. Items live inside their order row and
// are never persisted on their own.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id,omitempty"`
	RecipeID  string  `json:"recipe_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Notes     string  `json:"notes,omitempty"`
	Status    string  `json:"status"`
}

type Order struct {
	ID                  string      `gorm:"size:36;primaryKey" json:"id"`
	TableID             string      `gorm:"size:36;index;not null" json:"table_id"`
	Status              string      `gorm:"size:20;default:'PENDING'" json:"status"`
	Items               []OrderItem `gorm:"serializer:json" json:"items"`
	Subtotal            float64     `json:"subtotal"`
	Tax                 float64     `json:"tax"`
	Discount            float64     `json:"discount"`
	Total               float64     `json:"total"`
	CustomerName        string      `json:"customer_name,omitempty"`
	SpecialInstructions string      `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// ValidItemStatus reports whether s is a known line item status.
func ValidItemStatus(s string) bool {
	for _, st := range ItemStatuses {
		if st == s {
			return true
		}
	}
	return false
}
