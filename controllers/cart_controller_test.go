package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/stretchr/testify/require"
)

func TestCreateCartOnePerUser(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)

	w := performRequest(router, http.MethodPost, "/api/carts", map[string]interface{}{"user_id": user.ID}, token)
	requireStatus(t, w, http.StatusCreated)

	// A second cart for the same user is rejected
	w = performRequest(router, http.MethodPost, "/api/carts", map[string]interface{}{"user_id": user.ID}, token)
	requireStatus(t, w, http.StatusConflict)
}

func TestAddCartItemBumpsQuantity(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	cart := models.ShoppingCart{UserID: user.ID}
	require.NoError(t, config.DB.Create(&cart).Error)

	body := map[string]interface{}{
		"cart_id":    cart.ID,
		"product_id": product.ID,
		"quantity":   1,
	}

	w := performRequest(router, http.MethodPost, "/api/cart-items", body, token)
	requireStatus(t, w, http.StatusCreated)

	// Adding the same product again increments instead of duplicating
	w = performRequest(router, http.MethodPost, "/api/cart-items", body, token)
	requireStatus(t, w, http.StatusOK)

	var items []models.CartItem
	require.NoError(t, config.DB.Where("cart_id = ?", cart.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.InDelta(t, 7.50, items[0].Price, 0.001)
}

func TestAddCartItemRejectsNonPositiveQuantity(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	cart := models.ShoppingCart{UserID: user.ID}
	require.NoError(t, config.DB.Create(&cart).Error)

	w := performRequest(router, http.MethodPost, "/api/cart-items", map[string]interface{}{
		"cart_id":    cart.ID,
		"product_id": product.ID,
		"quantity":   -1,
	}, token)
	requireStatus(t, w, http.StatusUnprocessableEntity)
}

func TestGetCartByUser(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	cart := models.ShoppingCart{UserID: user.ID}
	require.NoError(t, config.DB.Create(&cart).Error)
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2, Price: 7.50}
	require.NoError(t, config.DB.Create(&item).Error)

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/carts/user/%d", user.ID), nil, token)
	requireStatus(t, w, http.StatusOK)

	w = performRequest(router, http.MethodGet, "/api/carts/user/9999", nil, token)
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteCartRemovesItems(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	cart := models.ShoppingCart{UserID: user.ID}
	require.NoError(t, config.DB.Create(&cart).Error)
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2, Price: 7.50}
	require.NoError(t, config.DB.Create(&item).Error)

	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/carts/%d", cart.ID), nil, token)
	requireStatus(t, w, http.StatusOK)

	var count int64
	config.DB.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	require.Zero(t, count)
}

func TestWishlistEmptyIsNotFound(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "shopper", models.RoleUser)

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/wishlist/user/%d", user.ID), nil, token)
	requireStatus(t, w, http.StatusNotFound)

	product := seedProduct(t, "novel", 7.50)
	w = performRequest(router, http.MethodPost, "/api/wishlist", map[string]interface{}{
		"user_id":    user.ID,
		"product_id": product.ID,
	}, token)
	requireStatus(t, w, http.StatusCreated)

	w = performRequest(router, http.MethodGet, fmt.Sprintf("/api/wishlist/user/%d", user.ID), nil, token)
	requireStatus(t, w, http.StatusOK)
}
