package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avaldez/restogest/models"
)

func getTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database:", err)
	}
	if err := db.AutoMigrate(&models.Table{}, &models.Order{}, &models.InventoryMovement{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func seedTable(t *testing.T, db *gorm.DB) models.Table {
	table := models.Table{Name: "Salón 1", Capacity: 4}
	if err := db.Create(&table).Error; err != nil {
		t.Fatal(err)
	}
	return table
}

func price(v float64) *float64 { return &v }

func TestCreateOrderTotals(t *testing.T) {
	cases := []struct {
		name     string
		items    []OrderItemRequest
		discount float64
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name:     "single item",
			items:    []OrderItemRequest{{ProductID: "P1", Quantity: 2, Price: price(12.50)}},
			subtotal: 25.00,
			tax:      4.00,
			total:    29.00,
		},
		{
			name: "multiple items",
			items: []OrderItemRequest{
				{ProductID: "P1", Quantity: 3, Price: price(15.00)},
				{RecipeID: "R1", Quantity: 1, Price: price(55.00)},
			},
			subtotal: 100.00,
			tax:      16.00,
			total:    116.00,
		},
		{
			name:     "with discount",
			items:    []OrderItemRequest{{ProductID: "P1", Quantity: 4, Price: price(25.00)}},
			discount: 16.00,
			subtotal: 100.00,
			tax:      16.00,
			total:    100.00,
		},
		{
			name:     "rounding",
			items:    []OrderItemRequest{{ProductID: "P1", Quantity: 3, Price: price(33.33)}},
			subtotal: 99.99,
			tax:      16.00,
			total:    115.99,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := getTestDB(t)
			table := seedTable(t, db)
			svc := NewOrderService(db)

			order, err := svc.Create(CreateOrderRequest{
				TableID:  table.ID,
				Items:    tc.items,
				Discount: tc.discount,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.subtotal, order.Subtotal)
			assert.Equal(t, tc.tax, order.Tax)
			assert.Equal(t, tc.total, order.Total)
		})
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := getTestDB(t)
	table := seedTable(t, db)
	svc := NewOrderService(db)

	cases := []struct {
		name string
		req  CreateOrderRequest
	}{
		{
			name: "no items",
			req:  CreateOrderRequest{TableID: table.ID},
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{
				TableID: table.ID,
				Items:   []OrderItemRequest{{ProductID: "P1", Quantity: 0, Price: price(10)}},
			},
		},
		{
			name: "missing price",
			req: CreateOrderRequest{
				TableID: table.ID,
				Items:   []OrderItemRequest{{ProductID: "P1", Quantity: 1}},
			},
		},
		{
			name: "missing product reference",
			req: CreateOrderRequest{
				TableID: table.ID,
				Items:   []OrderItemRequest{{Quantity: 1, Price: price(10)}},
			},
		},
		{
			name: "discount above subtotal",
			req: CreateOrderRequest{
				TableID:  table.ID,
				Items:    []OrderItemRequest{{ProductID: "P1", Quantity: 1, Price: price(10)}},
				Discount: 50,
			},
		},
		{
			name: "unknown status",
			req: CreateOrderRequest{
				TableID: table.ID,
				Items:   []OrderItemRequest{{ProductID: "P1", Quantity: 1, Price: price(10)}},
				Status:  "FROZEN",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateOrderCallerSuppliedStatus(t *testing.T) {
	db := getTestDB(t)
	table := seedTable(t, db)
	svc := NewOrderService(db)

	order, err := svc.Create(CreateOrderRequest{
		TableID: table.ID,
		Items:   []OrderItemRequest{{ProductID: "P1", Quantity: 1, Price: price(10)}},
		Status:  models.OrderConfirmed,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, order.Status)
}

func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	db := getTestDB(t)
	table := seedTable(t, db)
	svc := NewOrderService(db)

	order, err := svc.Create(CreateOrderRequest{
		TableID: table.ID,
		Items:   []OrderItemRequest{{ProductID: "P1", Quantity: 1, Price: price(10)}},
	})
	assert.NoError(t, err)

	// the workflow allows moving backwards and out of terminal states
	for _, status := range []string{
		models.OrderDelivered, models.OrderPending, models.OrderReady, models.OrderConfirmed,
	} {
		updated, err := svc.Update(order.ID, UpdateOrderRequest{Status: status})
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateKeepsDiscountWhenItemsReplaced(t *testing.T) {
	db := getTestDB(t)
	table := seedTable(t, db)
	svc := NewOrderService(db)

	order, err := svc.Create(CreateOrderRequest{
		TableID:  table.ID,
		Items:    []OrderItemRequest{{ProductID: "P1", Quantity: 2, Price: price(50)}},
		Discount: 10,
	})
	assert.NoError(t, err)

	items := []OrderItemRequest{{ProductID: "P2", Quantity: 1, Price: price(200)}}
	updated, err := svc.Update(order.ID, UpdateOrderRequest{Items: &items})
	assert.NoError(t, err)
	assert.Equal(t, 200.00, updated.Subtotal)
	assert.Equal(t, 32.00, updated.Tax)
	assert.Equal(t, 10.00, updated.Discount)
	assert.Equal(t, 222.00, updated.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 29.00, round2(29.000000000000004))
	assert.Equal(t, 12.35, round2(12.345678))
	assert.Equal(t, 115.99, round2(99.99*1.16-0.0))
}
