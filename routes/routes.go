package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/controllers"
	"github.com/avaldez/restogest/logger"
	"github.com/avaldez/restogest/services"
)

// SetupRouter wires every endpoint onto a fresh engine. Tests drive the
// returned engine directly with httptest.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery(), cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	productCtrl := controllers.NewProductController(db)
	recipeCtrl := controllers.NewRecipeController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db))
	inventoryCtrl := controllers.NewInventoryController(services.NewInventoryService(db))
	reportCtrl := controllers.NewReportController()

	products := r.Group("/products")
	{
		products.GET("", productCtrl.List)
		products.POST("", productCtrl.Create)
		products.GET("/low-stock", productCtrl.LowStock)
		products.GET("/:id", productCtrl.Get)
		products.PUT("/:id", productCtrl.Update)
		products.DELETE("/:id", productCtrl.Delete)
	}

	recipes := r.Group("/recipes")
	{
		recipes.GET("", recipeCtrl.List)
		recipes.POST("", recipeCtrl.Create)
		recipes.GET("/:id", recipeCtrl.Get)
		recipes.PUT("/:id", recipeCtrl.Update)
		recipes.DELETE("/:id", recipeCtrl.Delete)
	}

	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.List)
		tables.POST("", tableCtrl.Create)
		tables.GET("/:id", tableCtrl.Get)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Get)
		orders.PUT("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
		orders.PATCH("/:id/items/:itemId", orderCtrl.UpdateItemStatus)
	}

	inventory := r.Group("/inventory")
	{
		inventory.GET("/movements", inventoryCtrl.List)
		inventory.POST("/movements", inventoryCtrl.Record)
		inventory.DELETE("/movements/:id", inventoryCtrl.Delete)
	}

	r.GET("/reports", reportCtrl.Get)

	return r
}
