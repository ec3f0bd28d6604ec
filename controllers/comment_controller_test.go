package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	router := setupTest(t)
	_, token := createTestUser(t, "reviewer", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	w := performRequest(router, http.MethodPost, fmt.Sprintf("/api/products/%d/comments", product.ID),
		map[string]string{"comment": "Great read"}, token)
	requireStatus(t, w, http.StatusCreated)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	comment := data["comment"].(map[string]interface{})
	require.Equal(t, "Great read", comment["comment"])
	require.Equal(t, "reviewer", comment["username"])
}

func TestListProductComments(t *testing.T) {
	router := setupTest(t)
	user, _ := createTestUser(t, "reviewer", models.RoleUser)
	product := seedProduct(t, "novel", 7.50)

	comment := models.Comment{UserID: user.ID, ProductID: product.ID, Comment: "Nice"}
	require.NoError(t, config.DB.Create(&comment).Error)

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/products/%d/comments", product.ID), nil, "")
	requireStatus(t, w, http.StatusOK)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	comments := data["comments"].([]interface{})
	require.Len(t, comments, 1)

	first := comments[0].(map[string]interface{})
	require.Equal(t, "reviewer", first["username"])
}

func TestListProductCommentsEmptyIsNotFound(t *testing.T) {
	router := setupTest(t)
	product := seedProduct(t, "novel", 7.50)

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/products/%d/comments", product.ID), nil, "")
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	router := setupTest(t)
	owner, _ := createTestUser(t, "owner", models.RoleUser)
	_, otherToken := createTestUser(t, "other", models.RoleUser)
	_, adminToken := createTestUser(t, "admin", models.RoleAdmin)
	product := seedProduct(t, "novel", 7.50)

	comment := models.Comment{UserID: owner.ID, ProductID: product.ID, Comment: "Mine"}
	require.NoError(t, config.DB.Create(&comment).Error)

	// A different user cannot delete it
	w := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil, otherToken)
	requireStatus(t, w, http.StatusForbidden)

	// An admin can
	w = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), nil, adminToken)
	requireStatus(t, w, http.StatusOK)
}
