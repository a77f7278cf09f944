package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/database"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/middleware"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSeedData(seedCtx, database.Client); err != nil {
		log.Println("Seeding skipped:", err)
	}
	cancelSeed()

	// change streams live as long as the process
	controllers.StartWatchers(context.Background())

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// the dashboard frontend is a prebuilt SPA served statically
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	routes.UserRoutes(router)
	router.Use(middleware.Authentication())
	routes.InventoryRoutes(router)
	routes.OrderRoutes(router)
	routes.ReservationRoutes(router)
	routes.NotificationRoutes(router)
	routes.EmployeeRoutes(router)
	routes.MenuRoutes(router)
	routes.TableRoutes(router)
	routes.ReportRoutes(router)

	router.Run(":" + port)
}
