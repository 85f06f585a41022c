package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/models"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

type updateTableInput struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}

func validTableStatus(s string) bool {
	switch s {
	case models.TableAvailable, models.TableOccupied, models.TableReserved, models.TableMaintenance:
		return true
	}
	return false
}

func (tc *TableController) List(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("created_at ASC").Find(&tables).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (tc *TableController) Get(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (tc *TableController) Create(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}
	if !validTableStatus(table.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown table status"})
		return
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (tc *TableController) Update(c *gin.Context) {
	var input updateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != nil && !validTableStatus(*input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown table status"})
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		respondError(c, err)
		return
	}

	if input.Name != nil {
		table.Name = *input.Name
	}
	if input.Capacity != nil {
		table.Capacity = *input.Capacity
	}
	if input.Location != nil {
		table.Location = *input.Location
	}
	if input.Status != nil {
		table.Status = *input.Status
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (tc *TableController) Delete(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := tc.DB.Delete(&table).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": table.ID})
}
