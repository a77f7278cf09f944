package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/helpers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type boardResponse struct {
	Orders []models.OrderView `json:"orders"`
	Error  *string            `json:"error"`
}

func TestCreateOrderRejectsItemMissingPriceOrQuantity(t *testing.T) {
	router := newTestRouter()
	router.POST("/orders", CreateOrder())

	// an item without quantity and unit_price must fail validation,
	// not blow up on a nil dereference
	body := `{"status":"en_attente","items":[{"dish_id":"d1"}]}`
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsEmptyItemList(t *testing.T) {
	router := newTestRouter()
	router.POST("/orders", CreateOrder())

	body := `{"status":"en_attente","items":[]}`
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrdersBoardServesPlaceholdersWhenEmpty(t *testing.T) {
	orig := fetchBoardOrders
	defer func() { fetchBoardOrders = orig }()
	fetchBoardOrders = func(ctx context.Context, filter bson.M) ([]models.Order, error) {
		return []models.Order{}, nil
	}

	router := newTestRouter()
	router.GET("/orders/board", GetOrdersBoard())

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/orders/board", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp boardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// an empty store is not a failure: placeholders, no error field
	assert.Nil(t, resp.Error)
	require.Len(t, resp.Orders, 5)
	for _, order := range resp.Orders {
		assert.True(t, helpers.IsFallbackID(order.Order_id), order.Order_id)
	}
}

func TestOrdersBoardServesPlaceholdersWithErrorOnFailedRead(t *testing.T) {
	orig := fetchBoardOrders
	defer func() { fetchBoardOrders = orig }()
	fetchBoardOrders = func(ctx context.Context, filter bson.M) ([]models.Order, error) {
		return nil, errors.New("no reachable servers")
	}

	router := newTestRouter()
	router.GET("/orders/board", GetOrdersBoard())

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/orders/board", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp boardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Error)
	require.Len(t, resp.Orders, 5)
	for _, order := range resp.Orders {
		assert.True(t, helpers.IsFallbackID(order.Order_id), order.Order_id)
	}
}
