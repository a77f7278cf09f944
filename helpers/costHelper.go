package helpers

import "strings"

// IngredientPrice is one row of the static pricing table.
type IngredientPrice struct {
	PricePerUnit float64
	Unit         string
}

// Reference prices per unit of measure, keyed by lowercase ingredient name.
var PricingTable = map[string]IngredientPrice{
	"oignons":         {PricePerUnit: 1.20, Unit: "kg"},
	"tomates":         {PricePerUnit: 2.50, Unit: "kg"},
	"carottes":        {PricePerUnit: 1.10, Unit: "kg"},
	"pommes de terre": {PricePerUnit: 0.90, Unit: "kg"},
	"salade":          {PricePerUnit: 1.50, Unit: "pièce"},
	"poulet":          {PricePerUnit: 7.80, Unit: "kg"},
	"boeuf":           {PricePerUnit: 14.50, Unit: "kg"},
	"agneau":          {PricePerUnit: 16.00, Unit: "kg"},
	"saumon":          {PricePerUnit: 19.90, Unit: "kg"},
	"crevettes":       {PricePerUnit: 22.00, Unit: "kg"},
	"lait":            {PricePerUnit: 1.05, Unit: "l"},
	"fromage":         {PricePerUnit: 9.40, Unit: "kg"},
	"beurre":          {PricePerUnit: 8.20, Unit: "kg"},
	"creme fraiche":   {PricePerUnit: 4.30, Unit: "l"},
	"oeufs":           {PricePerUnit: 0.35, Unit: "pièce"},
	"farine":          {PricePerUnit: 0.80, Unit: "kg"},
	"riz":             {PricePerUnit: 1.60, Unit: "kg"},
	"huile d'olive":   {PricePerUnit: 6.50, Unit: "l"},
	"sel":             {PricePerUnit: 0.50, Unit: "kg"},
	"poivre":          {PricePerUnit: 18.00, Unit: "kg"},
}

type CostIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type IngredientCost struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Cost         float64 `json:"cost"`
}

type CostEstimate struct {
	TotalCost float64          `json:"total_cost"`
	Breakdown []IngredientCost `json:"breakdown"`
}

// CalculateMenuItemCost prices a recipe against the pricing table. The lookup
// is case-insensitive; an ingredient the table does not know contributes 0
// and keeps the unit it was submitted with.
func CalculateMenuItemCost(ingredients []CostIngredient) CostEstimate {
	estimate := CostEstimate{Breakdown: make([]IngredientCost, 0, len(ingredients))}
	for _, ing := range ingredients {
		entry, known := PricingTable[strings.ToLower(strings.TrimSpace(ing.Name))]
		line := IngredientCost{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
		if known {
			line.PricePerUnit = entry.PricePerUnit
			line.Unit = entry.Unit
			line.Cost = entry.PricePerUnit * ing.Quantity
		}
		estimate.Breakdown = append(estimate.Breakdown, line)
		estimate.TotalCost += line.Cost
	}
	return estimate
}

type Margin struct {
	SellingPrice float64 `json:"selling_price"`
	Cost         float64 `json:"cost"`
	Margin       float64 `json:"margin"`
	Percentage   float64 `json:"percentage"`
}

// CalculateMargin does not guard against sellingPrice == 0; callers must.
func CalculateMargin(sellingPrice, cost float64) Margin {
	margin := sellingPrice - cost
	return Margin{
		SellingPrice: sellingPrice,
		Cost:         cost,
		Margin:       margin,
		Percentage:   margin / sellingPrice * 100,
	}
}
