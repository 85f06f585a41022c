package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct{}

func NewReportController() *ReportController {
	return &ReportController{}
}

// Get handles GET /reports?type=&startDate=&endDate=. Each report type maps
// to a fixed sample payload; the dashboard renders these shapes directly.
// The date range is echoed back, never used to aggregate anything.
func (rc *ReportController) Get(c *gin.Context) {
	reportType := c.Query("type")
	build, ok := reportCatalog[reportType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
		return
	}

	payload := build()
	payload["type"] = reportType
	payload["period"] = gin.H{
		"start_date": c.Query("startDate"),
		"end_date":   c.Query("endDate"),
	}
	c.JSON(http.StatusOK, payload)
}

// reportCatalog holds the sample payload for every supported report type.
var reportCatalog = map[string]func() gin.H{
	"sales_summary": func() gin.H {
		return gin.H{
			"total_sales":  48250.00,
			"order_count":  412,
			"average_sale": 117.11,
			"best_day":     "Saturday",
		}
	},
	"daily_sales": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"day": "Monday", "sales": 5120.00, "orders": 48},
			{"day": "Tuesday", "sales": 4890.50, "orders": 44},
			{"day": "Wednesday", "sales": 6310.00, "orders": 57},
			{"day": "Thursday", "sales": 7025.75, "orders": 61},
			{"day": "Friday", "sales": 9480.25, "orders": 82},
			{"day": "Saturday", "sales": 10230.00, "orders": 89},
			{"day": "Sunday", "sales": 5193.50, "orders": 31},
		}}
	},
	"weekly_sales": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"week": 1, "sales": 41200.00},
			{"week": 2, "sales": 45930.50},
			{"week": 3, "sales": 48250.00},
			{"week": 4, "sales": 44105.25},
		}}
	},
	"monthly_sales": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"month": "January", "sales": 162400.00},
			{"month": "February", "sales": 158900.75},
			{"month": "March", "sales": 179485.50},
		}}
	},
	"top_products": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"product": "Tacos al pastor", "units": 820, "revenue": 12300.00},
			{"product": "Margarita", "units": 610, "revenue": 9150.00},
			{"product": "Enchiladas verdes", "units": 540, "revenue": 8100.00},
		}}
	},
	"worst_products": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"product": "Sopa fría", "units": 12, "revenue": 180.00},
			{"product": "Ensalada césar", "units": 25, "revenue": 500.00},
		}}
	},
	"menu_engineering": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"item": "Tacos al pastor", "popularity": 0.92, "margin": 0.68, "quadrant": "STAR"},
			{"item": "Enchiladas verdes", "popularity": 0.81, "margin": 0.41, "quadrant": "PLOWHORSE"},
			{"item": "Filete a la parrilla", "popularity": 0.34, "margin": 0.72, "quadrant": "PUZZLE"},
			{"item": "Sopa fría", "popularity": 0.08, "margin": 0.22, "quadrant": "DOG"},
		}}
	},
	"revenue_by_category": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"category": "Platos fuertes", "revenue": 26300.00, "share": 0.55},
			{"category": "Bebidas", "revenue": 14475.00, "share": 0.30},
			{"category": "Postres", "revenue": 7475.00, "share": 0.15},
		}}
	},
	"average_ticket": func() gin.H {
		return gin.H{"average_ticket": 117.11, "median_ticket": 98.50, "max_ticket": 820.00}
	},
	"orders_by_status": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"status": "PENDING", "count": 8},
			{"status": "PREPARING", "count": 5},
			{"status": "READY", "count": 3},
			{"status": "DELIVERED", "count": 389},
			{"status": "CANCELLED", "count": 7},
		}}
	},
	"orders_by_hour": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"hour": 13, "orders": 72},
			{"hour": 14, "orders": 95},
			{"hour": 15, "orders": 61},
			{"hour": 20, "orders": 88},
			{"hour": 21, "orders": 64},
		}}
	},
	"table_occupancy": func() gin.H {
		return gin.H{"occupied": 9, "available": 5, "reserved": 2, "maintenance": 1, "occupancy_rate": 0.64}
	},
	"table_turnover": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"table": "Terraza 1", "turns_per_day": 5.2, "avg_minutes": 62},
			{"table": "Salón 3", "turns_per_day": 4.1, "avg_minutes": 75},
		}}
	},
	"stock_levels": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"product": "Tortillas", "stock": 420, "min_stock": 200, "unit": "pz"},
			{"product": "Aguacate", "stock": 18, "min_stock": 25, "unit": "kg"},
			{"product": "Limón", "stock": 40, "min_stock": 15, "unit": "kg"},
		}}
	},
	"low_stock": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"product": "Aguacate", "stock": 18, "min_stock": 25, "reorder": true},
			{"product": "Queso oaxaca", "stock": 6, "min_stock": 10, "reorder": true},
		}}
	},
	"inventory_value": func() gin.H {
		return gin.H{"total_value": 86320.40, "item_count": 134}
	},
	"inventory_turnover": func() gin.H {
		return gin.H{"turnover_ratio": 6.4, "days_on_hand": 12.3}
	},
	"movements_summary": func() gin.H {
		return gin.H{"in": 248, "out": 231, "net_quantity": 17}
	},
	"waste": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"product": "Lechuga", "quantity": 4.5, "unit": "kg", "cost": 112.50},
			{"product": "Pan", "quantity": 22, "unit": "pz", "cost": 88.00},
		}}
	},
	"purchases": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"supplier": "Abarrotes del Centro", "total": 12480.00, "orders": 6},
			{"supplier": "Carnes Selectas", "total": 18920.00, "orders": 4},
		}}
	},
	"recipe_costs": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"recipe": "Tacos al pastor", "cost": 4.80, "price": 15.00, "margin": 0.68},
			{"recipe": "Enchiladas verdes", "cost": 8.85, "price": 15.00, "margin": 0.41},
		}}
	},
	"recipe_popularity": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"recipe": "Tacos al pastor", "orders": 820},
			{"recipe": "Margarita", "orders": 610},
		}}
	},
	"cancellations": func() gin.H {
		return gin.H{"cancelled_orders": 7, "lost_revenue": 812.50, "main_reason": "wait time"}
	},
	"discounts": func() gin.H {
		return gin.H{"discounted_orders": 31, "total_discounted": 1420.00, "average_discount": 45.81}
	},
	"tax_summary": func() gin.H {
		return gin.H{"taxable_base": 41594.83, "tax_collected": 6655.17, "rate": 0.16}
	},
	"profit_margin": func() gin.H {
		return gin.H{"revenue": 48250.00, "cost_of_goods": 19300.00, "gross_margin": 0.60}
	},
	"payment_methods": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"method": "card", "share": 0.58},
			{"method": "cash", "share": 0.37},
			{"method": "transfer", "share": 0.05},
		}}
	},
	"staff_performance": func() gin.H {
		return gin.H{"rows": []gin.H{
			{"waiter": "Lucía", "orders": 142, "sales": 17320.00},
			{"waiter": "Marco", "orders": 128, "sales": 15210.50},
		}}
	},
}
