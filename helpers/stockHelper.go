package helpers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"
)

// Stock level classes derived from current/min/max thresholds.
const (
	StockLevelLow    = "low"
	StockLevelMedium = "medium"
	StockLevelGood   = "good"
)

// Batch expiry classes derived from days to expiry.
const (
	ExpiryExpired      = "expired"
	ExpiryExpiringSoon = "expiring-soon"
	ExpiryWatch        = "watch"
	ExpiryValid        = "valid"
)

const RestockShelfLifeDays = 30

// CurrentStock sums the batch amounts; the stored current_stock field must
// always equal this.
func CurrentStock(batches []models.StockBatch) float64 {
	var total float64
	for _, batch := range batches {
		total += batch.Amount
	}
	return total
}

func TotalValue(batches []models.StockBatch, pricePerUnit float64) float64 {
	return CurrentStock(batches) * pricePerUnit
}

// LastRestocked returns the order date of the most recent batch, nil when the
// ingredient has no batches.
func LastRestocked(batches []models.StockBatch) *time.Time {
	var latest *time.Time
	for i := range batches {
		if latest == nil || batches[i].Order_date.After(*latest) {
			latest = &batches[i].Order_date
		}
	}
	return latest
}

// StockLevelStatus classifies a stock level against its thresholds. Both
// boundaries are inclusive: exactly minLevel is low, exactly 0.8*maxLevel is
// good.
func StockLevelStatus(currentStock, minLevel, maxLevel float64) string {
	if currentStock <= minLevel {
		return StockLevelLow
	}
	if currentStock >= 0.8*maxLevel {
		return StockLevelGood
	}
	return StockLevelMedium
}

// DaysToExpiry counts whole days until expiry, rounding up, so a batch
// expiring later today is already at 0.
func DaysToExpiry(expiry, today time.Time) int {
	return int(math.Ceil(expiry.Sub(today).Hours() / 24))
}

func BatchExpiryStatus(expiry, today time.Time) string {
	days := DaysToExpiry(expiry, today)
	switch {
	case days <= 0:
		return ExpiryExpired
	case days <= 7:
		return ExpiryExpiringSoon
	case days <= 14:
		return ExpiryWatch
	default:
		return ExpiryValid
	}
}

// ValidateRestockAmount bounds a restock to [1, maxLevel-currentStock].
// Amounts outside the range are rejected rather than clamped so the caller
// never writes a quantity the manager did not ask for.
func ValidateRestockAmount(amount, currentStock, maxLevel float64) error {
	if amount < 1 {
		return fmt.Errorf("restock amount must be at least 1, got %v", amount)
	}
	room := maxLevel - currentStock
	if amount > room {
		return fmt.Errorf("restock amount %v exceeds remaining capacity %v", amount, room)
	}
	return nil
}

// NewRestockBatch builds the batch a restock appends: ordered today, expiring
// after the standard shelf life.
func NewRestockBatch(batchID string, amount float64, today time.Time) models.StockBatch {
	return models.StockBatch{
		Batch_id:    batchID,
		Amount:      amount,
		Order_date:  today,
		Expiry_date: today.AddDate(0, 0, RestockShelfLifeDays),
	}
}

var categoryRules = []struct {
	Substring string
	Category  string
}{
	{"oignon", "Légumes"},
	{"tomate", "Légumes"},
	{"carotte", "Légumes"},
	{"pomme de terre", "Légumes"},
	{"salade", "Légumes"},
	{"poulet", "Viandes"},
	{"boeuf", "Viandes"},
	{"agneau", "Viandes"},
	{"saumon", "Poissons"},
	{"crevette", "Poissons"},
	{"lait", "Produits Laitiers"},
	{"fromage", "Produits Laitiers"},
	{"beurre", "Produits Laitiers"},
	{"creme", "Produits Laitiers"},
	{"crème", "Produits Laitiers"},
	{"poivre", "Épices"},
	{"sel", "Épices"},
	{"paprika", "Épices"},
	{"farine", "Épicerie"},
	{"riz", "Épicerie"},
	{"huile", "Épicerie"},
}

// InferCategory guesses a display category from the ingredient name, first
// matching rule wins. Only used when a submitted ingredient carries no
// category; the result is stored on the document so it is never re-derived.
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.Substring) {
			return rule.Category
		}
	}
	return "Divers"
}
