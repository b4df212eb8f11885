package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"go-street-kiosk/controllers"
	"go-street-kiosk/database"
	"go-street-kiosk/helpers"
	"go-street-kiosk/ledger"
	"go-street-kiosk/middleware"
	"go-street-kiosk/routes"
	"go-street-kiosk/shop"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.New(os.Stdout, "[kiosk] ", log.LstdFlags)

	if err := godotenv.Load(".env"); err != nil {
		logger.Printf("no .env file loaded: %v", err)
	}

	port := getEnv("PORT", "8000")
	shopName := getEnv("SHOP_NAME", "Malaysian Street Vibes")

	loc, err := time.LoadLocation(getEnv("SHOP_TIMEZONE", "Asia/Kuala_Lumpur"))
	if err != nil {
		logger.Fatalf("invalid SHOP_TIMEZONE: %v", err)
	}
	storeTimeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "30s"))
	if err != nil {
		logger.Fatalf("invalid STORE_TIMEOUT: %v", err)
	}
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		logger.Fatal("SECRET_KEY must be set")
	}
	adminHash, err := helpers.AdminHash(os.Getenv("ADMIN_PASSWORD_HASH"), os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		logger.Fatalf("admin password: %v", err)
	}

	dbConfig := database.FromEnv()
	store, closeStore, err := database.Open(context.Background(), dbConfig)
	if err != nil {
		logger.Fatalf("open %s blob store: %v", dbConfig.Backend, err)
	}
	defer closeStore()
	logger.Printf("using %s blob store", dbConfig.Backend)

	ctl := &controllers.Controller{
		Orders:    ledger.NewService(store, logger),
		Config:    shop.NewConfigStore(store, logger),
		Menu:      shop.NewMenuStore(store, logger),
		Tokens:    helpers.NewTokenHelper(secret, 12*time.Hour),
		IDs:       helpers.NewOrderIDGenerator(nil),
		AdminHash: adminHash,
		ShopName:  shopName,
		Location:  loc,
		Timeout:   storeTimeout,
		Logger:    logger,
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:9000"), ","),
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader, "X-Report-Error"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router, ctl)

	if err := router.Run(":" + port); err != nil {
		logger.Printf("server stopped: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
