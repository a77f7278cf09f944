package helpers

import (
	"testing"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestCurrentStockSumsBatches(t *testing.T) {
	batches := []models.StockBatch{
		{Batch_id: "b1", Amount: 15, Order_date: day(-20), Expiry_date: day(10)},
		{Batch_id: "b2", Amount: 10, Order_date: day(-5), Expiry_date: day(25)},
	}
	assert.Equal(t, 25.0, CurrentStock(batches))

	// a restock appends, never mutates
	batches = append(batches, NewRestockBatch("b3", 5, day(0)))
	assert.Equal(t, 30.0, CurrentStock(batches))
	assert.Equal(t, 15.0, batches[0].Amount)
}

func TestTotalValue(t *testing.T) {
	batches := []models.StockBatch{{Amount: 4}, {Amount: 6}}
	assert.Equal(t, 25.0, TotalValue(batches, 2.5))
}

func TestLastRestocked(t *testing.T) {
	assert.Nil(t, LastRestocked(nil))

	batches := []models.StockBatch{
		{Order_date: day(-20)},
		{Order_date: day(-2)},
		{Order_date: day(-9)},
	}
	got := LastRestocked(batches)
	require.NotNil(t, got)
	assert.Equal(t, day(-2), *got)
}

func TestStockLevelStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		min      float64
		max      float64
		expected string
	}{
		{"exactly at min level is low", 5, 5, 30, StockLevelLow},
		{"below min level is low", 3, 5, 30, StockLevelLow},
		{"exactly at 80 percent of max is good", 24, 5, 30, StockLevelGood},
		{"above 80 percent of max is good", 25, 5, 30, StockLevelGood},
		{"between thresholds is medium", 15, 5, 30, StockLevelMedium},
		{"just above min is medium", 5.1, 5, 30, StockLevelMedium},
		{"just below 80 percent is medium", 23.9, 5, 30, StockLevelMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StockLevelStatus(tt.current, tt.min, tt.max))
		})
	}
}

func TestBatchExpiryStatus(t *testing.T) {
	today := day(0)
	tests := []struct {
		name     string
		expiry   time.Time
		expected string
	}{
		{"expiring today is expired", today, ExpiryExpired},
		{"already past is expired", day(-3), ExpiryExpired},
		{"one day out is expiring soon", day(1), ExpiryExpiringSoon},
		{"seven days out is expiring soon", day(7), ExpiryExpiringSoon},
		{"eight days out is watch", day(8), ExpiryWatch},
		{"fourteen days out is watch", day(14), ExpiryWatch},
		{"fifteen days out is valid", day(15), ExpiryValid},
		{"far out is valid", day(90), ExpiryValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BatchExpiryStatus(tt.expiry, today))
		})
	}
}

func TestDaysToExpiryRoundsUp(t *testing.T) {
	today := day(0)
	assert.Equal(t, 0, DaysToExpiry(today, today))
	assert.Equal(t, 1, DaysToExpiry(today.Add(6*time.Hour), today))
	assert.Equal(t, 7, DaysToExpiry(day(7), today))
}

func TestValidateRestockAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		current float64
		max     float64
		wantErr bool
	}{
		{"zero amount rejected", 0, 10, 30, true},
		{"negative amount rejected", -5, 10, 30, true},
		{"below one rejected", 0.5, 10, 30, true},
		{"amount over remaining capacity rejected", 25, 10, 30, true},
		{"exactly remaining capacity accepted", 20, 10, 30, false},
		{"minimal amount accepted", 1, 10, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRestockAmount(tt.amount, tt.current, tt.max)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRestockBatch(t *testing.T) {
	today := day(0)
	batch := NewRestockBatch("b9", 12, today)
	assert.Equal(t, "b9", batch.Batch_id)
	assert.Equal(t, 12.0, batch.Amount)
	assert.Equal(t, today, batch.Order_date)
	assert.Equal(t, today.AddDate(0, 0, RestockShelfLifeDays), batch.Expiry_date)
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Oignons rouges", "Légumes"},
		{"Filet de poulet", "Viandes"},
		{"Saumon fumé", "Poissons"},
		{"Lait entier", "Produits Laitiers"},
		{"Poivre noir", "Épices"},
		{"Truffe blanche", "Divers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferCategory(tt.name))
		})
	}
}
