package services

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/logger"
	"github.com/avaldez/restogest/models"
)

type RecordMovementRequest struct {
	ProductID     string  `json:"product_id"`
	Type          string  `json:"type"`
	Quantity      float64 `json:"quantity"`
	Reason        string  `json:"reason"`
	ReferenceType string  `json:"reference_type"`
	ReferenceID   string  `json:"reference_id"`
	Notes         string  `json:"notes"`
	UserID        string  `json:"user_id"`
}

// InventoryService appends to the movement ledger. Entries are historical
// records only; they never mutate Product.Stock.
type InventoryService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		db:  db,
		log: logger.Log.With().Str("component", "inventory_service").Logger(),
	}
}

// Record validates and appends one movement. The timestamp is assigned
// server-side on insert.
func (s *InventoryService) Record(req RecordMovementRequest) (*models.InventoryMovement, error) {
	if req.ProductID == "" {
		return nil, models.NewValidationError("product_id is required")
	}
	if req.Quantity <= 0 {
		return nil, models.NewValidationError("quantity must be positive")
	}
	if !models.ValidMovementType(req.Type) {
		return nil, models.NewValidationError("type must be IN or OUT")
	}
	if req.ReferenceType != "" && !models.ValidReferenceType(req.ReferenceType) {
		return nil, models.NewValidationError("unknown reference type %q", req.ReferenceType)
	}
	if req.Reason == "" {
		return nil, models.NewValidationError("reason is required")
	}

	movement := &models.InventoryMovement{
		ProductID:     req.ProductID,
		Type:          req.Type,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
		UserID:        req.UserID,
	}
	if err := s.db.Create(movement).Error; err != nil {
		return nil, err
	}

	s.log.Info().
		Str("movement_id", movement.ID).
		Str("product_id", movement.ProductID).
		Str("type", movement.Type).
		Float64("quantity", movement.Quantity).
		Msg("movement recorded")
	return movement, nil
}

// List returns every movement, newest first.
func (s *InventoryService) List() ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	if err := s.db.Order("created_at DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Delete removes a movement. The ledger applies no compensation: deleting
// an entry does not touch any stock figure.
func (s *InventoryService) Delete(id string) error {
	var movement models.InventoryMovement
	if err := s.db.First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.NotFoundError{Resource: "movement"}
		}
		return err
	}
	return s.db.Delete(&movement).Error
}
