package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/database"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/helpers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var employeeCollection *mongo.Collection = database.OpenCollection(database.Client, "employee")

func GetEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := employeeCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing employees"})
			return
		}
		var allEmployees []models.Employee
		if err := cursor.All(ctx, &allEmployees); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allEmployees)
	}
}

func GetEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		employeeId := c.Param("employee_id")

		var employee models.Employee
		err := employeeCollection.FindOne(ctx, bson.M{"employee_id": employeeId}).Decode(&employee)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee was not found"})
			return
		}
		c.JSON(http.StatusOK, employee)
	}
}

// CreateEmployee gates on the server-side email verification call; the API
// key never leaves the backend environment.
func CreateEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var employee models.Employee
		if err := c.BindJSON(&employee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&employee)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		deliverable, err := helpers.VerifyEmail(ctx, *employee.Email)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "email verification is unavailable"})
			return
		}
		if !deliverable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email address failed verification"})
			return
		}

		count, err := employeeCollection.CountDocuments(ctx, bson.M{"email": employee.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking for the email"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "an employee with this email already exists"})
			return
		}

		now := time.Now()
		employee.ID = primitive.NewObjectID()
		employee.Employee_id = employee.ID.Hex()
		employee.Created_at = now
		employee.Updated_at = now

		result, err := employeeCollection.InsertOne(ctx, employee)
		if err != nil {
			msg := fmt.Sprintf("employee was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type salaryUpdateRequest struct {
	Salary float64 `json:"salary"`
}

// UpdateEmployeeSalary is the only employee mutation; records are never
// deleted from the back office.
func UpdateEmployeeSalary() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		employeeId := c.Param("employee_id")

		var req salaryUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Salary < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "salary must not be negative"})
			return
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "salary", Value: req.Salary},
			{Key: "updated_at", Value: time.Now()},
		}}}
		result, err := employeeCollection.UpdateOne(ctx, bson.M{"employee_id": employeeId}, update)
		if err != nil {
			msg := fmt.Sprintf("salary update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
