package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Ingredient is one line of a recipe, referencing a product by id.
type Ingredient struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type Recipe struct {
	ID           string       `gorm:"size:36;primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name" binding:"required"`
	Description  string       `gorm:"type:text" json:"description"`
	Instructions string       `gorm:"type:text" json:"instructions"`
	PrepTime     int          `json:"prep_time"`
	Servings     int          `json:"servings"`
	Difficulty   string       `gorm:"size:10" json:"difficulty"`
	Active       bool         `gorm:"default:true" json:"active"`
	Ingredients  []Ingredient `gorm:"serializer:json" json:"ingredients"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
