package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/models"
)

func TestCreateProductRoundTrip(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "POST", "/products", map[string]interface{}{
			"name":      "Aguacate",
			"price":     45.0,
			"stock":     18.0,
			"min_stock": 25.0,
			"unit":      "kg",
			"category":  "Verduras",
			"active":    true,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created models.Product
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		w = doRequest(router, "GET", "/products/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Product
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Aguacate", got.Name)
		assert.Equal(t, 45.0, got.Price)
		assert.Equal(t, "kg", got.Unit)
		assert.Equal(t, "Verduras", got.Category)
	})
}

func TestCreateProductWithoutNameFails(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "POST", "/products", map[string]interface{}{
			"price": 10.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateProductPartial(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		product := models.Product{Name: "Limón", Price: 20, Unit: "kg"}
		assert.NoError(t, db.Create(&product).Error)

		w := doRequest(router, "PUT", "/products/"+product.ID, map[string]interface{}{
			"price": 22.5,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Product
		assert.NoError(t, db.First(&got, "id = ?", product.ID).Error)
		assert.Equal(t, 22.5, got.Price)
		assert.Equal(t, "Limón", got.Name)
	})
}

func TestGetMissingProductReturns404(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "GET", "/products/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLowStockProducts(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		db.Create(&models.Product{Name: "Aguacate", Stock: 18, MinStock: 25})
		db.Create(&models.Product{Name: "Limón", Stock: 40, MinStock: 15})

		w := doRequest(router, "GET", "/products/low-stock", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var products []models.Product
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.Len(t, products, 1)
		assert.Equal(t, "Aguacate", products[0].Name)
	})
}

func TestDeleteProduct(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		product := models.Product{Name: "Pan"}
		assert.NoError(t, db.Create(&product).Error)

		w := doRequest(router, "DELETE", "/products/"+product.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(router, "GET", "/products/"+product.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateRecipeRoundTrip(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "POST", "/recipes", map[string]interface{}{
			"name":       "Tacos al pastor",
			"prep_time":  25,
			"servings":   2,
			"difficulty": "MEDIUM",
			"ingredients": []map[string]interface{}{
				{"product_id": "P1", "quantity": 0.3, "unit": "kg"},
				{"product_id": "P2", "quantity": 6, "unit": "pz"},
			},
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created models.Recipe
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)

		w = doRequest(router, "GET", "/recipes/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got models.Recipe
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Tacos al pastor", got.Name)
		assert.Len(t, got.Ingredients, 2)
		assert.Equal(t, "P1", got.Ingredients[0].ProductID)
	})
}

func TestCreateRecipeBadDifficultyFails(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "POST", "/recipes", map[string]interface{}{
			"name":       "Mole",
			"difficulty": "IMPOSSIBLE",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateTableDefaultsToAvailable(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "POST", "/tables", map[string]interface{}{
			"name":     "Salón 3",
			"capacity": 6,
			"location": "salón",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created models.Table
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, models.TableAvailable, created.Status)
		assert.Nil(t, created.CurrentOrderID)
	})
}

func TestUpdateTableBadStatusFails(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		table := models.Table{Name: "Barra 1"}
		assert.NoError(t, db.Create(&table).Error)

		w := doRequest(router, "PUT", "/tables/"+table.ID, map[string]interface{}{
			"status": "BROKEN",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealth(t *testing.T) {
	withTestTransaction(t, func(db *gorm.DB) {
		router := SetupRouter(db)

		w := doRequest(router, "GET", "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
