package helpers

import (
	"testing"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRequired(t *testing.T) {
	tests := []struct {
		name             string
		notificationType string
		isRead           bool
		expected         bool
	}{
		{"unread commande requires action", models.NotificationTypeCommande, false, true},
		{"read commande requires nothing", models.NotificationTypeCommande, true, false},
		{"unread reservation requires action", models.NotificationTypeReservation, false, true},
		{"unread cancellation request requires action", models.NotificationTypeCancellationRequest, false, true},
		{"stock alert never requires action", models.NotificationTypeStock, false, false},
		{"decision notifications never require action", models.NotificationTypeCancellationAccepted, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActionRequired(tt.notificationType, tt.isRead))
		})
	}
}

func TestActionRequiredRecomputedAfterRead(t *testing.T) {
	n := models.Notification{Type: models.NotificationTypeCommande, Is_read: false}
	assert.True(t, NotificationToView(n).Action_required)

	n.Is_read = true
	assert.False(t, NotificationToView(n).Action_required)
}

func TestExtractTableID(t *testing.T) {
	explicit := "table-07"
	n := models.Notification{Table_id: &explicit, Message: "Problème signalé table 12, client parti"}
	assert.Equal(t, "table-07", ExtractTableID(n))

	// legacy documents only mention the table in the message text
	n.Table_id = nil
	assert.Equal(t, "12", ExtractTableID(n))

	n.Message = "aucun numéro ici"
	assert.Equal(t, "", ExtractTableID(n))
}

func TestNotificationToViewFillsTableFromMessage(t *testing.T) {
	n := models.Notification{
		Notification_id: "n1",
		Type:            models.NotificationTypeReservation,
		Message:         "Réservation en conflit sur la table 4.",
	}
	view := NotificationToView(n)
	require.NotNil(t, view.Table_id)
	assert.Equal(t, "4", *view.Table_id)
}

func TestDistinctTypes(t *testing.T) {
	notifications := []models.Notification{
		{Type: models.NotificationTypeStock},
		{Type: models.NotificationTypeCommande},
		{Type: models.NotificationTypeStock},
		{Type: models.NotificationTypeCancellationRequest},
	}
	assert.Equal(t, []string{
		models.NotificationTypeStock,
		models.NotificationTypeCommande,
		models.NotificationTypeCancellationRequest,
	}, DistinctTypes(notifications))

	assert.Empty(t, DistinctTypes(nil))
}

func TestConfirmationMessage(t *testing.T) {
	assert.Equal(t, "Demande d'annulation acceptée", ConfirmationMessage(models.NotificationTypeCancellationRequest, true))
	assert.Equal(t, "Réservation refusée", ConfirmationMessage(models.NotificationTypeReservation, false))
	assert.Equal(t, "Notification acceptée", ConfirmationMessage(models.NotificationTypeStock, true))
}
