package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsMissingPassword(t *testing.T) {
	router := newTestRouter()
	router.POST("/users/login", Login())

	body := `{"email":"manager@resto.dz"}`
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingEmail(t *testing.T) {
	router := newTestRouter()
	router.POST("/users/login", Login())

	body := `{"password":"s3cret"}`
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/users/login", strings.NewReader(body))
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
