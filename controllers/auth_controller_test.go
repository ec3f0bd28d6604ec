package controllers_test

import (
	"net/http"
	"testing"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/models"
	"github.com/storeapp/storeapi/utils"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	router := setupTest(t)

	body := map[string]string{
		"username": "alice",
		"password": "secret",
		"role":     models.RoleUser,
	}

	w := performRequest(router, http.MethodPost, "/auth/register", body, "")
	requireStatus(t, w, http.StatusCreated)

	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "alice").First(&user).Error)
	require.Equal(t, models.RoleUser, user.Role)
	require.True(t, utils.CheckPassword("secret", user.Password))
}

func TestRegisterUserDuplicate(t *testing.T) {
	router := setupTest(t)

	body := map[string]string{
		"username": "alice",
		"password": "secret",
		"role":     models.RoleUser,
	}

	w := performRequest(router, http.MethodPost, "/auth/register", body, "")
	requireStatus(t, w, http.StatusCreated)

	w = performRequest(router, http.MethodPost, "/auth/register", body, "")
	requireStatus(t, w, http.StatusConflict)
}

func TestRegisterUserValidation(t *testing.T) {
	router := setupTest(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"short username", map[string]string{"username": "ab", "password": "secret", "role": models.RoleUser}},
		{"missing password", map[string]string{"username": "alice", "role": models.RoleUser}},
		{"missing role", map[string]string{"username": "alice", "password": "secret"}},
		{"admin not self-registrable", map[string]string{"username": "alice", "password": "secret", "role": models.RoleAdmin}},
		{"unknown role", map[string]string{"username": "alice", "password": "secret", "role": "ROOT"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/auth/register", tc.body, "")
			requireStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestRegisterUserAcceptsAnyCharacters(t *testing.T) {
	router := setupTest(t)

	// Any name of at least 3 characters registers, punctuation included
	for _, username := range []string{"ann-marie", "jane.doe@example.com", "björn"} {
		w := performRequest(router, http.MethodPost, "/auth/register", map[string]string{
			"username": username,
			"password": "secret",
			"role":     models.RoleUser,
		}, "")
		requireStatus(t, w, http.StatusCreated)

		var user models.User
		require.NoError(t, config.DB.Where("username = ?", username).First(&user).Error)
	}
}

func TestRegisterUserProviderAllowed(t *testing.T) {
	router := setupTest(t)

	body := map[string]string{
		"username": "shopkeeper",
		"password": "secret",
		"role":     models.RoleProvider,
	}

	w := performRequest(router, http.MethodPost, "/auth/register", body, "")
	requireStatus(t, w, http.StatusCreated)
}

func TestLoginUser(t *testing.T) {
	router := setupTest(t)
	user, _ := createTestUser(t, "bob", models.RoleUser)

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
		"username": "bob",
		"password": "password123",
	}, "")
	requireStatus(t, w, http.StatusOK)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	tokenString := data["token"].(string)

	claims, err := utils.ValidateToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "bob", claims.Username)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginUserWrongPassword(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "bob", models.RoleUser)

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
		"username": "bob",
		"password": "wrong",
	}, "")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestLoginUserUnknown(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/auth/login", map[string]string{
		"username": "ghost",
		"password": "password123",
	}, "")
	requireStatus(t, w, http.StatusUnauthorized)
}
