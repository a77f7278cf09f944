package helpers

import (
	"strings"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"
)

// Dashboard status vocabulary. One enumeration for every screen; the kitchen
// and front-of-house boards project from this instead of carrying their own.
const (
	UIStatusPending   = "Pending"
	UIStatusLaunched  = "Launched"
	UIStatusReady     = "Ready"
	UIStatusDelivered = "Delivered"
	UIStatusCancelled = "Cancelled"
)

var backendToUI = map[string]string{
	models.StatusEnAttente:     UIStatusPending,
	models.StatusConfirmee:     UIStatusLaunched,
	models.StatusEnPreparation: UIStatusLaunched,
	models.StatusPrete:         UIStatusReady,
	models.StatusServie:        UIStatusDelivered,
	models.StatusAnnulee:       UIStatusCancelled,
	// legacy codes still present in older documents
	"confirmed": UIStatusLaunched,
	"cancelled": UIStatusCancelled,
}

var uiToBackend = map[string]string{
	UIStatusPending:   models.StatusEnAttente,
	UIStatusLaunched:  models.StatusEnPreparation,
	UIStatusReady:     models.StatusPrete,
	UIStatusDelivered: models.StatusServie,
	UIStatusCancelled: models.StatusAnnulee,
}

// ToUIStatus is total: any code the table does not know maps to Pending so a
// foreign status never breaks the board.
func ToUIStatus(backendStatus string) string {
	if ui, ok := backendToUI[strings.ToLower(strings.TrimSpace(backendStatus))]; ok {
		return ui
	}
	return UIStatusPending
}

// ToBackendStatus translates a dashboard status back to the stored
// vocabulary; false when the UI status itself is unknown.
func ToBackendStatus(uiStatus string) (string, bool) {
	backend, ok := uiToBackend[uiStatus]
	return backend, ok
}

// FormatOrderTime renders the board's HH:MM column in local time.
func FormatOrderTime(t time.Time) string {
	return t.Local().Format("15:04")
}

// ParseBackendDate copes with the malformed timestamps older documents carry:
// it strips the bogus timezone suffix and retries, and falls back to the
// provided default instead of surfacing an invalid date.
func ParseBackendDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if idx := strings.Index(raw, " UTC+"); idx > 0 {
		raw = raw[:idx]
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}
