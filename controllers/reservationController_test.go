package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func strPtr(s string) *string { return &s }

func TestCancelReservationConflictWhenAlreadyCancelled(t *testing.T) {
	origFind, origSet := findReservation, setReservationStatus
	defer func() { findReservation, setReservationStatus = origFind, origSet }()

	findReservation = func(ctx context.Context, reservationId string) (models.Reservation, error) {
		return models.Reservation{
			Reservation_id: reservationId,
			Status:         models.ReservationStatusAnnulee,
		}, nil
	}
	updated := false
	setReservationStatus = func(ctx context.Context, reservationId string, status string) (*mongo.UpdateResult, error) {
		updated = true
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	router := newTestRouter()
	router.POST("/reservations/:reservation_id/cancel", CancelReservation())

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/reservations/abc123/cancel", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, updated, "an already cancelled reservation must not be rewritten")
}

func TestCancelReservationSetsAnnulee(t *testing.T) {
	origFind, origSet := findReservation, setReservationStatus
	defer func() { findReservation, setReservationStatus = origFind, origSet }()

	findReservation = func(ctx context.Context, reservationId string) (models.Reservation, error) {
		return models.Reservation{
			Reservation_id: reservationId,
			Status:         models.ReservationStatusConfirmee,
		}, nil
	}
	var appliedStatus string
	setReservationStatus = func(ctx context.Context, reservationId string, status string) (*mongo.UpdateResult, error) {
		appliedStatus = status
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	router := newTestRouter()
	router.POST("/reservations/:reservation_id/cancel", CancelReservation())

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/reservations/abc123/cancel", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReservationStatusAnnulee, appliedStatus)
}

func TestReservationViewKeepsStoredStatus(t *testing.T) {
	// reservations are shown in their own vocabulary; only order statuses
	// go through the dashboard translation
	view := reservationToView(reservationWithClient{
		Reservation: models.Reservation{
			Reservation_id: "r1",
			Status:         models.ReservationStatusConfirmee,
		},
		Client: []models.Client{{
			First_name: strPtr("Amine"),
			Last_name:  strPtr("Bouaziz"),
			Phone:      strPtr("+213 555 12 34 56"),
		}},
	})

	assert.Equal(t, models.ReservationStatusConfirmee, view.Status)
	assert.Equal(t, "Amine Bouaziz", view.Customer_name)
	assert.Equal(t, "+213 555 12 34 56", view.Phone)
}
