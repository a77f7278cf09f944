package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/helpers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type stockReportRow struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Current_stock float64 `json:"current_stock"`
	Unit          string  `json:"unit"`
	Total_value   float64 `json:"total_value"`
	Stock_status  string  `json:"stock_status"`
}

func buildStockReport(ctx context.Context) ([]stockReportRow, error) {
	cursor, err := ingredientCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var allIngredients []models.IngredientStock
	if err := cursor.All(ctx, &allIngredients); err != nil {
		return nil, err
	}

	rows := make([]stockReportRow, 0, len(allIngredients))
	for _, ingredient := range allIngredients {
		current := helpers.CurrentStock(ingredient.Batches)
		rows = append(rows, stockReportRow{
			Name:          derefOr(ingredient.Name, ""),
			Category:      ingredient.Category,
			Current_stock: current,
			Unit:          derefOr(ingredient.Unit, ""),
			Total_value:   current * ingredient.Price_per_unit,
			Stock_status:  helpers.StockLevelStatus(current, ingredient.Min_level, ingredient.Max_level),
		})
	}
	return rows, nil
}

func GetStockReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		rows, err := buildStockReport(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while building the stock report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ExportStockReportPDF renders the stock report as a table with a title and
// date header.
func ExportStockReportPDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		rows, err := buildStockReport(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while building the stock report"})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, "Rapport de stock")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 8, time.Now().Format("02/01/2006"))
		pdf.Ln(12)

		headers := []string{"Ingrédient", "Catégorie", "Stock", "Unité", "Valeur", "Statut"}
		widths := []float64{45, 35, 25, 20, 30, 30}
		pdf.SetFont("Helvetica", "B", 10)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			pdf.CellFormat(widths[0], 7, row.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 7, row.Category, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 7, fmt.Sprintf("%.2f", row.Current_stock), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[3], 7, row.Unit, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", row.Total_value), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[5], 7, row.Stock_status, "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while rendering the report"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="rapport-stock.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

// GetSalesReport aggregates delivered orders over a date range.
func GetSalesReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		startDate, err := time.Parse("2006-01-02", c.Param("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date format"})
			return
		}
		endDate, err := time.Parse("2006-01-02", c.Param("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date format"})
			return
		}

		match := bson.D{{Key: "$match", Value: bson.D{
			{Key: "status", Value: models.StatusServie},
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: startDate}, {Key: "$lte", Value: endDate.AddDate(0, 0, 1)}}},
		}}}
		group := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{{Key: "format", Value: "%Y-%m-%d"}, {Key: "date", Value: "$created_at"}}}}},
			{Key: "orders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}}
		sort := bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}

		cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{match, group, sort})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while building the sales report"})
			return
		}
		var rows []bson.M
		if err := cursor.All(ctx, &rows); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
