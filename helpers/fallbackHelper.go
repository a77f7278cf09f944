package helpers

import (
	"strings"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"
)

// Placeholder rows keep the dashboard populated when the live collections are
// empty or a read fails. Their ids carry the demo- prefix so status write-back
// skips the backend for them: the documents do not exist there.

const FallbackIDPrefix = "demo-"

func IsFallbackID(id string) bool {
	return strings.HasPrefix(id, FallbackIDPrefix)
}

// FallbackOrders returns the fixed five-row placeholder order set. The slice
// is rebuilt on every call so callers may mutate their copy freely.
func FallbackOrders() []models.OrderView {
	return []models.OrderView{
		{Order_id: "demo-cmd-001", Customer_name: "Sophie Martin", Table: "3", Server_name: "Julien", Items: 2, Total_amount: 38.50, Status: UIStatusLaunched, Time: "12:15"},
		{Order_id: "demo-cmd-002", Customer_name: "Karim Benali", Table: "7", Server_name: "Claire", Items: 4, Total_amount: 72.00, Status: UIStatusPending, Time: "12:22"},
		{Order_id: "demo-cmd-003", Customer_name: "Client inconnu", Table: "1", Server_name: "Julien", Items: 1, Total_amount: 14.90, Status: UIStatusReady, Time: "12:31"},
		{Order_id: "demo-cmd-004", Customer_name: "Laura Petit", Table: "5", Server_name: "Amina", Items: 3, Total_amount: 54.30, Status: UIStatusDelivered, Time: "12:40"},
		{Order_id: "demo-cmd-005", Customer_name: "Marc Dubois", Table: "N/A", Server_name: "Claire", Items: 2, Total_amount: 27.80, Status: UIStatusCancelled, Time: "12:47"},
	}
}

// FallbackReservations mirrors FallbackOrders for the reservation board.
func FallbackReservations() []models.ReservationView {
	tonight := time.Date(2024, 6, 14, 19, 30, 0, 0, time.Local)
	return []models.ReservationView{
		{Reservation_id: "demo-res-001", Customer_name: "Nadia Cherif", Phone: "+33 6 12 34 56 78", Party_size: 4, Reserved_for: tonight, Time: "19:30", Status: models.ReservationStatusConfirmee, Table_id: "table-04"},
		{Reservation_id: "demo-res-002", Customer_name: "Paul Lefevre", Phone: "+33 6 98 76 54 32", Party_size: 2, Reserved_for: tonight.Add(30 * time.Minute), Time: "20:00", Status: models.ReservationStatusEnAttente, Table_id: "table-09"},
		{Reservation_id: "demo-res-003", Customer_name: "Emma Rousseau", Phone: "+33 7 11 22 33 44", Party_size: 6, Reserved_for: tonight.Add(time.Hour), Time: "20:30", Status: models.ReservationStatusAnnulee, Table_id: "table-02"},
	}
}
