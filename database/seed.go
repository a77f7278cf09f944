package database

import (
	"context"
	"log"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seed data is explicit and deterministic: fixed names, phones, amounts and
// day offsets. Nothing here is derived from a random source, so two fresh
// databases seeded the same day are identical.

type seedBatch struct {
	amount       float64
	orderDaysAgo int
	expiryInDays int
}

type seedIngredient struct {
	name     string
	category string
	unit     string
	price    float64
	minLevel float64
	maxLevel float64
	batches  []seedBatch
}

var seedIngredients = []seedIngredient{
	{"Oignons", "Légumes", "kg", 1.20, 5, 30, []seedBatch{{15, 20, 10}, {10, 5, 25}}},
	{"Tomates", "Légumes", "kg", 2.50, 4, 20, []seedBatch{{6, 12, 2}, {4, 3, 27}}},
	{"Poulet", "Viandes", "kg", 7.80, 8, 40, []seedBatch{{12, 2, 5}}},
	{"Saumon", "Poissons", "kg", 19.90, 3, 15, []seedBatch{{2, 1, 6}}},
	{"Lait", "Produits Laitiers", "l", 1.05, 10, 50, []seedBatch{{20, 8, 4}, {25, 1, 13}}},
	{"Farine", "Épicerie", "kg", 0.80, 10, 60, []seedBatch{{50, 30, 90}}},
	{"Poivre", "Épices", "kg", 18.00, 1, 5, []seedBatch{{3, 60, 300}}},
}

type seedClient struct {
	firstName string
	lastName  string
	email     string
	phone     string
}

var seedClients = []seedClient{
	{"Nadia", "Cherif", "nadia.cherif@example.com", "+33 6 12 34 56 78"},
	{"Paul", "Lefevre", "paul.lefevre@example.com", "+33 6 98 76 54 32"},
	{"Emma", "Rousseau", "emma.rousseau@example.com", "+33 7 11 22 33 44"},
	{"Karim", "Benali", "karim.benali@example.com", "+33 6 55 44 33 22"},
}

type seedDish struct {
	name        string
	category    string
	price       float64
	ingredients []struct {
		name     string
		quantity float64
		unit     string
	}
}

var seedDishes = []seedDish{
	{"Poulet rôti", "Plats", 16.50, []struct {
		name     string
		quantity float64
		unit     string
	}{{"Poulet", 0.35, "kg"}, {"Oignons", 0.10, "kg"}, {"Poivre", 0.005, "kg"}}},
	{"Saumon grillé", "Plats", 21.00, []struct {
		name     string
		quantity float64
		unit     string
	}{{"Saumon", 0.25, "kg"}, {"Tomates", 0.15, "kg"}}},
	{"Soupe à l'oignon", "Entrées", 8.50, []struct {
		name     string
		quantity float64
		unit     string
	}{{"Oignons", 0.30, "kg"}, {"Farine", 0.05, "kg"}, {"Lait", 0.10, "l"}}},
}

// EnsureSeedData fills the reference collections when they are empty. It is
// idempotent: a non-empty collection is left untouched.
func EnsureSeedData(ctx context.Context, client *mongo.Client) error {
	now := time.Now()

	if err := seedCollection(ctx, OpenCollection(client, "ingredient"), func() []interface{} {
		docs := make([]interface{}, 0, len(seedIngredients))
		for _, s := range seedIngredients {
			var batches []models.StockBatch
			var current float64
			var lastRestocked time.Time
			for _, b := range s.batches {
				ordered := now.AddDate(0, 0, -b.orderDaysAgo)
				batches = append(batches, models.StockBatch{
					Batch_id:    primitive.NewObjectID().Hex(),
					Amount:      b.amount,
					Order_date:  ordered,
					Expiry_date: now.AddDate(0, 0, b.expiryInDays),
				})
				current += b.amount
				if ordered.After(lastRestocked) {
					lastRestocked = ordered
				}
			}
			name, unit := s.name, s.unit
			restocked := lastRestocked
			id := primitive.NewObjectID()
			docs = append(docs, models.IngredientStock{
				ID:             id,
				Ingredient_id:  id.Hex(),
				Name:           &name,
				Category:       s.category,
				Unit:           &unit,
				Price_per_unit: s.price,
				Batches:        batches,
				Current_stock:  current,
				Min_level:      s.minLevel,
				Max_level:      s.maxLevel,
				Total_value:    current * s.price,
				Last_restocked: &restocked,
				Created_at:     now,
				Updated_at:     now,
			})
		}
		return docs
	}); err != nil {
		return err
	}

	if err := seedCollection(ctx, OpenCollection(client, "client"), func() []interface{} {
		docs := make([]interface{}, 0, len(seedClients))
		for _, s := range seedClients {
			first, last, email, phone := s.firstName, s.lastName, s.email, s.phone
			id := primitive.NewObjectID()
			docs = append(docs, models.Client{
				ID:         id,
				Client_id:  id.Hex(),
				First_name: &first,
				Last_name:  &last,
				Email:      &email,
				Phone:      &phone,
				Created_at: now,
				Updated_at: now,
			})
		}
		return docs
	}); err != nil {
		return err
	}

	if err := seedCollection(ctx, OpenCollection(client, "table"), func() []interface{} {
		docs := []interface{}{}
		for i := 1; i <= 10; i++ {
			number := i
			guests := 2 + (i%3)*2
			id := primitive.NewObjectID()
			docs = append(docs, models.Table{
				ID:               id,
				Table_id:         id.Hex(),
				Table_number:     &number,
				Number_of_guests: &guests,
				Status:           "libre",
				Created_at:       now,
				Updated_at:       now,
			})
		}
		return docs
	}); err != nil {
		return err
	}

	dishCollection := OpenCollection(client, "dish")
	linkCollection := OpenCollection(client, "dishIngredient")
	count, err := dishCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, s := range seedDishes {
		name, category := s.name, s.category
		dishID := primitive.NewObjectID()
		dish := models.Dish{
			ID:            dishID,
			Dish_id:       dishID.Hex(),
			Name:          &name,
			Category:      &category,
			Selling_price: s.price,
			Created_at:    now,
			Updated_at:    now,
		}
		if _, err := dishCollection.InsertOne(ctx, dish); err != nil {
			return err
		}
		for _, ing := range s.ingredients {
			ingName, unit, dishRef := ing.name, ing.unit, dishID.Hex()
			linkID := primitive.NewObjectID()
			link := models.DishIngredient{
				ID:         linkID,
				Link_id:    linkID.Hex(),
				Dish_id:    &dishRef,
				Name:       &ingName,
				Quantity:   ing.quantity,
				Unit:       &unit,
				Created_at: now,
				Updated_at: now,
			}
			if _, err := linkCollection.InsertOne(ctx, link); err != nil {
				return err
			}
		}
	}
	log.Println("Seed data inserted")
	return nil
}

func seedCollection(ctx context.Context, collection *mongo.Collection, build func() []interface{}) error {
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	docs := build()
	if len(docs) == 0 {
		return nil
	}
	_, err = collection.InsertMany(ctx, docs)
	return err
}
