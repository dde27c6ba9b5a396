package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"full_name": "Jane Smith",
		"email":     "jane@example.com",
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.Equal(t, "Jane Smith", body["full_name"])
	require.NotEmpty(t, body["id"])

	// Same email again.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"full_name": "Jane Smith",
		"email":     "jane@example.com",
		"password":  "password123",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterUser_ReportsEveryInvalidField(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, resp, &body)
	require.Contains(t, body.Errors, "full_name")
	require.Contains(t, body.Errors, "email")
	require.Contains(t, body.Errors, "password")
}

func TestLoginUser(t *testing.T) {
	app := setupTestApp(t)
	createTestUser(t, "John Doe", "john@example.com")

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "john@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body["token"])

	resp = doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "john@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
