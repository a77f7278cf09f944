package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMenuItemCost(t *testing.T) {
	estimate := CalculateMenuItemCost([]CostIngredient{
		{Name: "Oignons", Quantity: 2, Unit: "kg"},
		{Name: "POULET", Quantity: 0.5, Unit: "kg"},
	})

	require.Len(t, estimate.Breakdown, 2)
	assert.InDelta(t, 2.40, estimate.Breakdown[0].Cost, 1e-9)
	assert.InDelta(t, 3.90, estimate.Breakdown[1].Cost, 1e-9)
	assert.InDelta(t, 6.30, estimate.TotalCost, 1e-9)
}

func TestCalculateMenuItemCostUnknownIngredient(t *testing.T) {
	estimate := CalculateMenuItemCost([]CostIngredient{
		{Name: "Safran impérial", Quantity: 3, Unit: "g"},
		{Name: "Riz", Quantity: 1, Unit: "kg"},
	})

	require.Len(t, estimate.Breakdown, 2)
	// unknown ingredient contributes nothing and keeps its declared unit
	assert.Equal(t, 0.0, estimate.Breakdown[0].Cost)
	assert.Equal(t, 0.0, estimate.Breakdown[0].PricePerUnit)
	assert.Equal(t, "g", estimate.Breakdown[0].Unit)
	assert.InDelta(t, 1.60, estimate.TotalCost, 1e-9)
}

func TestCalculateMenuItemCostEmpty(t *testing.T) {
	estimate := CalculateMenuItemCost(nil)
	assert.Equal(t, 0.0, estimate.TotalCost)
	assert.Empty(t, estimate.Breakdown)
}

func TestCalculateMargin(t *testing.T) {
	tests := []struct {
		name         string
		sellingPrice float64
		cost         float64
		wantMargin   float64
		wantPercent  float64
	}{
		{"standard margin", 20, 5, 15, 75},
		{"negative margin", 10, 12, -2, -20},
		{"free cost", 8, 0, 8, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CalculateMargin(tt.sellingPrice, tt.cost)
			assert.InDelta(t, tt.wantMargin, m.Margin, 1e-9)
			assert.InDelta(t, tt.wantPercent, m.Percentage, 1e-9)
			// the identity every caller relies on
			assert.InDelta(t, tt.sellingPrice, m.Margin+m.Cost, 1e-9)
		})
	}
}
