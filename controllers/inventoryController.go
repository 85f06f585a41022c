package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avaldez/restogest/services"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{Service: svc}
}

func (ic *InventoryController) List(c *gin.Context) {
	movements, err := ic.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (ic *InventoryController) Record(c *gin.Context) {
	var req services.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	movement, err := ic.Service.Record(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movement)
}

func (ic *InventoryController) Delete(c *gin.Context) {
	if err := ic.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
