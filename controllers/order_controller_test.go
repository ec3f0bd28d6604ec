package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()

	category := models.Category{Name: "category-for-" + name}
	require.NoError(t, config.DB.Create(&category).Error)

	product := models.Product{
		Name:       name,
		Price:      price,
		Quantity:   100,
		CategoryID: category.ID,
	}
	require.NoError(t, config.DB.Create(&product).Error)
	return product
}

func TestCreateOrderTotalsItems(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)

	book := seedProduct(t, "novel", 7.50)
	pen := seedProduct(t, "pen", 2.50)

	w := performRequest(router, http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": user.ID,
		"items": []map[string]interface{}{
			{"product_id": book.ID, "quantity": 2},
			{"product_id": pen.ID, "quantity": 2},
		},
	}, token)
	requireStatus(t, w, http.StatusCreated)

	var order models.Order
	require.NoError(t, config.DB.Preload("OrderProducts").Where("user_id = ?", user.ID).First(&order).Error)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.OrderProducts, 2)
	require.InDelta(t, 20.00, order.TotalAmount, 0.001)
}

func TestCreateOrderSkipsUnknownProducts(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)

	book := seedProduct(t, "novel", 10.00)

	w := performRequest(router, http.MethodPost, "/api/orders", map[string]interface{}{
		"user_id": user.ID,
		"items": []map[string]interface{}{
			{"product_id": book.ID, "quantity": 1},
			{"product_id": 9999, "quantity": 3},
		},
	}, token)
	requireStatus(t, w, http.StatusCreated)

	var order models.Order
	require.NoError(t, config.DB.Preload("OrderProducts").Where("user_id = ?", user.ID).First(&order).Error)
	require.Len(t, order.OrderProducts, 1)
	require.InDelta(t, 10.00, order.TotalAmount, 0.001)
}

func TestOrderLineItemAdjustsCachedTotal(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)

	book := seedProduct(t, "novel", 10.00)
	pen := seedProduct(t, "pen", 5.00)

	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending, TotalAmount: 10.00}
	order.OrderProducts = []models.OrderProduct{
		{ProductID: book.ID, Quantity: 1, PriceAtOrderTime: 10.00},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	// Add bumps the total by price times quantity
	w := performRequest(router, http.MethodPost, "/api/order-products", map[string]interface{}{
		"order_id":   order.ID,
		"product_id": pen.ID,
		"quantity":   2,
	}, token)
	requireStatus(t, w, http.StatusCreated)

	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	require.InDelta(t, 20.00, reloaded.TotalAmount, 0.001)

	// Remove decrements by the item's contribution
	var item models.OrderProduct
	require.NoError(t, config.DB.Where("order_id = ? AND product_id = ?", order.ID, pen.ID).First(&item).Error)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/order-products/%d", item.ID), nil, token)
	requireStatus(t, w, http.StatusOK)

	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	require.InDelta(t, 10.00, reloaded.TotalAmount, 0.001)
}

func TestOrderTotalNeverNegative(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)

	book := seedProduct(t, "novel", 10.00)

	// Cached total drifted below the line item's contribution
	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending, TotalAmount: 4.00}
	order.OrderProducts = []models.OrderProduct{
		{ProductID: book.ID, Quantity: 1, PriceAtOrderTime: 10.00},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	var item models.OrderProduct
	require.NoError(t, config.DB.Where("order_id = ?", order.ID).First(&item).Error)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/order-products/%d", item.ID), nil, token)
	requireStatus(t, w, http.StatusOK)

	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	require.Equal(t, 0.0, reloaded.TotalAmount)
}

func TestAddLineItemUnknownOrder(t *testing.T) {
	router := setupTest(t)
	_, token := createTestUser(t, "buyer", models.RoleUser)
	book := seedProduct(t, "novel", 10.00)

	w := performRequest(router, http.MethodPost, "/api/order-products", map[string]interface{}{
		"order_id":   9999,
		"product_id": book.ID,
		"quantity":   1,
	}, token)
	requireStatus(t, w, http.StatusNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)

	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending}
	require.NoError(t, config.DB.Create(&order).Error)

	// Any known status is accepted, even skipping intermediate states
	w := performRequest(router, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", order.ID),
		map[string]string{"status": models.OrderStatusDelivered}, token)
	requireStatus(t, w, http.StatusOK)

	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	require.Equal(t, models.OrderStatusDelivered, reloaded.Status)

	// Unknown statuses are rejected
	w = performRequest(router, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", order.ID),
		map[string]string{"status": "TELEPORTED"}, token)
	requireStatus(t, w, http.StatusUnprocessableEntity)
}

func TestDeleteOrderRemovesLineItems(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "buyer", models.RoleUser)
	book := seedProduct(t, "novel", 10.00)

	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending, TotalAmount: 10.00}
	order.OrderProducts = []models.OrderProduct{
		{ProductID: book.ID, Quantity: 1, PriceAtOrderTime: 10.00},
	}
	require.NoError(t, config.DB.Create(&order).Error)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil, token)
	requireStatus(t, w, http.StatusOK)

	var count int64
	config.DB.Model(&models.OrderProduct{}).Where("order_id = ?", order.ID).Count(&count)
	require.Zero(t, count)

	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil, token)
	requireStatus(t, w, http.StatusNotFound)
}
