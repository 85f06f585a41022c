package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/models"
)

type RecipeController struct {
	DB *gorm.DB
}

func NewRecipeController(db *gorm.DB) *RecipeController {
	return &RecipeController{DB: db}
}

type updateRecipeInput struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Instructions *string              `json:"instructions"`
	PrepTime     *int                 `json:"prep_time"`
	Servings     *int                 `json:"servings"`
	Difficulty   *string              `json:"difficulty"`
	Active       *bool                `json:"active"`
	Ingredients  *[]models.Ingredient `json:"ingredients"`
}

func validDifficulty(d string) bool {
	return d == models.DifficultyEasy || d == models.DifficultyMedium || d == models.DifficultyHard
}

func (rc *RecipeController) List(c *gin.Context) {
	var recipes []models.Recipe
	if err := rc.DB.Order("created_at ASC").Find(&recipes).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (rc *RecipeController) Get(c *gin.Context) {
	var recipe models.Recipe
	if err := rc.DB.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Create(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.Difficulty != "" && !validDifficulty(recipe.Difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be EASY, MEDIUM or HARD"})
		return
	}
	if err := rc.DB.Create(&recipe).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) Update(c *gin.Context) {
	var input updateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Difficulty != nil && !validDifficulty(*input.Difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be EASY, MEDIUM or HARD"})
		return
	}

	var recipe models.Recipe
	if err := rc.DB.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		respondError(c, err)
		return
	}

	if input.Name != nil {
		recipe.Name = *input.Name
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Instructions != nil {
		recipe.Instructions = *input.Instructions
	}
	if input.PrepTime != nil {
		recipe.PrepTime = *input.PrepTime
	}
	if input.Servings != nil {
		recipe.Servings = *input.Servings
	}
	if input.Difficulty != nil {
		recipe.Difficulty = *input.Difficulty
	}
	if input.Active != nil {
		recipe.Active = *input.Active
	}
	if input.Ingredients != nil {
		recipe.Ingredients = *input.Ingredients
	}

	if err := rc.DB.Save(&recipe).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
	var recipe models.Recipe
	if err := rc.DB.First(&recipe, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := rc.DB.Delete(&recipe).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": recipe.ID})
}
