package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/logger"
	"github.com/avaldez/restogest/models"
)

// TaxRate is the IVA applied to every order subtotal.
const TaxRate = 0.16

type OrderItemRequest struct {
	ProductID string   `json:"product_id"`
	RecipeID  string   `json:"recipe_id"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
	Notes     string   `json:"notes"`
}

type CreateOrderRequest struct {
	TableID             string             `json:"table_id" binding:"required"`
	Items               []OrderItemRequest `json:"items"`
	CustomerName        string             `json:"customer_name"`
	SpecialInstructions string             `json:"special_instructions"`
	Discount            float64            `json:"discount"`
	Status              string             `json:"status"`
}

// UpdateOrderRequest carries a partial update; nil fields are left alone.
// A non-empty Status may be any known status: the workflow does not
// restrict which transitions are allowed.
type UpdateOrderRequest struct {
	Items               *[]OrderItemRequest `json:"items"`
	Status              string              `json:"status"`
	CustomerName        *string             `json:"customer_name"`
	SpecialInstructions *string             `json:"special_instructions"`
	Discount            *float64            `json:"discount"`
}

// OrderService owns the order lifecycle and keeps the assigned table's
// occupancy in step with it. Every order/table pair of writes happens in
// one transaction.
type OrderService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:  db,
		log: logger.Log.With().Str("component", "order_service").Logger(),
	}
}

// Create validates the request, computes totals and persists the order,
// marking its table OCCUPIED in the same transaction.
func (s *OrderService) Create(req CreateOrderRequest) (*models.Order, error) {
	items, subtotal, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Discount < 0 || req.Discount > subtotal {
		return nil, models.NewValidationError("discount must be between 0 and the subtotal")
	}
	status := req.Status
	if status == "" {
		status = models.OrderPending
	}
	if !models.ValidOrderStatus(status) {
		return nil, models.NewValidationError("unknown order status %q", status)
	}

	sub := round2(subtotal)
	tax := round2(sub * TaxRate)
	order := &models.Order{
		TableID:             req.TableID,
		Status:              status,
		Items:               items,
		Subtotal:            sub,
		Tax:                 tax,
		Discount:            req.Discount,
		Total:               round2(sub + tax - req.Discount),
		CustomerName:        req.CustomerName,
		SpecialInstructions: req.SpecialInstructions,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, "id = ?", req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Resource: "table"}
			}
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&table).Updates(map[string]interface{}{
			"status":           models.TableOccupied,
			"current_order_id": order.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("table_id", order.TableID).
		Float64("total", order.Total).
		Msg("order created")
	return order, nil
}

// Update applies a partial update. A replaced item list recomputes the
// totals with the same formula as Create. Moving the order to CANCELLED or
// DELIVERED releases its table back to AVAILABLE.
func (s *OrderService) Update(id string, req UpdateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "order"}
		}
		return nil, err
	}

	if req.Items != nil {
		items, subtotal, err := buildItems(*req.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Subtotal = round2(subtotal)
		order.Tax = round2(order.Subtotal * TaxRate)
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return nil, models.NewValidationError("discount must not be negative")
		}
		order.Discount = *req.Discount
	}
	if order.Discount > order.Subtotal {
		return nil, models.NewValidationError("discount must be between 0 and the subtotal")
	}
	order.Total = round2(order.Subtotal + order.Tax - order.Discount)

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.SpecialInstructions != nil {
		order.SpecialInstructions = *req.SpecialInstructions
	}

	releaseTable := false
	if req.Status != "" {
		if !models.ValidOrderStatus(req.Status) {
			return nil, models.NewValidationError("unknown order status %q", req.Status)
		}
		order.Status = req.Status
		releaseTable = req.Status == models.OrderCancelled || req.Status == models.OrderDelivered
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		if releaseTable {
			return releaseTableTx(tx, order.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("order_id", order.ID).Str("status", order.Status).Msg("order updated")
	return &order, nil
}

// Delete removes the order and releases its table.
func (s *OrderService) Delete(id string) error {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotFoundError{Resource: "order"}
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Order{}, "id = ?", id).Error; err != nil {
			return err
		}
		return releaseTableTx(tx, order.TableID)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// UpdateItemStatus moves one line item through the kitchen flow.
func (s *OrderService) UpdateItemStatus(orderID, itemID, status string) (*models.Order, error) {
	if !models.ValidItemStatus(status) {
		return nil, models.NewValidationError("unknown item status %q", status)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "order"}
		}
		return nil, err
	}

	found := false
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			order.Items[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return nil, &models.NotFoundError{Resource: "order item"}
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Resource: "order"}
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func buildItems(reqs []OrderItemRequest) ([]models.OrderItem, float64, error) {
	if len(reqs) == 0 {
		return nil, 0, models.NewValidationError("order must contain at least one item")
	}
	items := make([]models.OrderItem, len(reqs))
	var subtotal float64
	for i, it := range reqs {
		if it.ProductID == "" && it.RecipeID == "" {
			return nil, 0, models.NewValidationError("item %d is missing a product or recipe reference", i)
		}
		if it.Quantity <= 0 {
			return nil, 0, models.NewValidationError("item %d quantity must be positive", i)
		}
		if it.Price == nil || *it.Price < 0 {
			return nil, 0, models.NewValidationError("item %d is missing a price", i)
		}
		items[i] = models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: it.ProductID,
			RecipeID:  it.RecipeID,
			Quantity:  it.Quantity,
			Price:     *it.Price,
			Notes:     it.Notes,
			Status:    models.ItemPending,
		}
		subtotal += *it.Price * float64(it.Quantity)
	}
	return items, subtotal, nil
}

func releaseTableTx(tx *gorm.DB, tableID string) error {
	return tx.Model(&models.Table{}).Where("id = ?", tableID).Updates(map[string]interface{}{
		"status":           models.TableAvailable,
		"current_order_id": nil,
	}).Error
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
