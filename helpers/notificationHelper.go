package helpers

import (
	"strings"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"
)

// ActionRequired is recomputed on every read: only unread notifications of the
// actionable types need a manager decision.
func ActionRequired(notificationType string, isRead bool) bool {
	if isRead {
		return false
	}
	switch notificationType {
	case models.NotificationTypeCommande,
		models.NotificationTypeReservation,
		models.NotificationTypeCancellationRequest:
		return true
	}
	return false
}

// ExtractTableID prefers the explicit table_id field; older notifications only
// mention the table inside the message text ("... table 12 ..."), so those are
// parsed as a last resort.
func ExtractTableID(n models.Notification) string {
	if n.Table_id != nil && *n.Table_id != "" {
		return *n.Table_id
	}
	return tableIDFromMessage(n.Message)
}

func tableIDFromMessage(message string) string {
	lower := strings.ToLower(message)
	idx := strings.Index(lower, "table ")
	if idx < 0 {
		return ""
	}
	rest := message[idx+len("table "):]
	if end := strings.IndexAny(rest, " ,.;:"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// NotificationToView derives the inbox row for one stored notification.
func NotificationToView(n models.Notification) models.NotificationView {
	view := models.NotificationView{
		Notification_id: n.Notification_id,
		Type:            n.Type,
		Title:           n.Title,
		Message:         n.Message,
		Is_read:         n.Is_read,
		Action_required: ActionRequired(n.Type, n.Is_read),
		Status:          n.Status,
		Commande_id:     n.Commande_id,
		Reservation_id:  n.Reservation_id,
		Table_id:        n.Table_id,
		Created_at:      n.Created_at,
		Read_at:         n.Read_at,
	}
	if tableID := ExtractTableID(n); tableID != "" && view.Table_id == nil {
		view.Table_id = &tableID
	}
	return view
}

// DistinctTypes lists the notification types present in a fetched batch, in
// first-seen order; the inbox builds its filter tabs from this.
func DistinctTypes(notifications []models.Notification) []string {
	seen := make(map[string]bool)
	types := []string{}
	for _, n := range notifications {
		if !seen[n.Type] {
			seen[n.Type] = true
			types = append(types, n.Type)
		}
	}
	return types
}

// ConfirmationMessage is the toast text for an approve/reject decision.
func ConfirmationMessage(notificationType string, accepted bool) string {
	switch notificationType {
	case models.NotificationTypeCancellationRequest:
		if accepted {
			return "Demande d'annulation acceptée"
		}
		return "Demande d'annulation refusée"
	case models.NotificationTypeReservation:
		if accepted {
			return "Réservation confirmée"
		}
		return "Réservation refusée"
	case models.NotificationTypeCommande:
		if accepted {
			return "Commande validée"
		}
		return "Commande refusée"
	default:
		if accepted {
			return "Notification acceptée"
		}
		return "Notification refusée"
	}
}
