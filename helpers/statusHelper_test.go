package helpers

import (
	"testing"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUIStatusKnownCodes(t *testing.T) {
	tests := []struct {
		backend  string
		expected string
	}{
		{models.StatusEnAttente, UIStatusPending},
		{models.StatusConfirmee, UIStatusLaunched},
		{models.StatusEnPreparation, UIStatusLaunched},
		{models.StatusPrete, UIStatusReady},
		{models.StatusServie, UIStatusDelivered},
		{models.StatusAnnulee, UIStatusCancelled},
		{"confirmed", UIStatusLaunched},
		{"cancelled", UIStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToUIStatus(tt.backend))
		})
	}
}

func TestToUIStatusIsTotal(t *testing.T) {
	// unrecognized codes degrade to Pending, never to an error
	assert.Equal(t, UIStatusPending, ToUIStatus("statut_mystere"))
	assert.Equal(t, UIStatusPending, ToUIStatus(""))
	assert.Equal(t, UIStatusPending, ToUIStatus("  CONFIRMEE_V2 "))
}

func TestToUIStatusNormalizes(t *testing.T) {
	assert.Equal(t, UIStatusLaunched, ToUIStatus(" Confirmee "))
	assert.Equal(t, UIStatusCancelled, ToUIStatus("ANNULEE"))
}

func TestToBackendStatus(t *testing.T) {
	for _, ui := range []string{UIStatusPending, UIStatusLaunched, UIStatusReady, UIStatusDelivered, UIStatusCancelled} {
		backend, ok := ToBackendStatus(ui)
		require.True(t, ok, ui)
		// the round trip stays in the same UI class
		assert.Equal(t, ui, ToUIStatus(backend))
	}

	_, ok := ToBackendStatus("NotAStatus")
	assert.False(t, ok)
}

func TestFormatOrderTime(t *testing.T) {
	ts := time.Date(2024, 6, 10, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "09:05", FormatOrderTime(ts))
}

func TestParseBackendDate(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{"rfc3339", "2024-06-10T12:30:00Z", time.Date(2024, 6, 10, 12, 30, 0, 0, time.UTC)},
		{"timezone suffix stripped", "2024-06-10T12:30:00 UTC+1", time.Date(2024, 6, 10, 12, 30, 0, 0, time.UTC)},
		{"date only", "2024-06-10", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"garbage falls back", "pas une date", fallback},
		{"empty falls back", "", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBackendDate(tt.raw, fallback))
		})
	}
}
