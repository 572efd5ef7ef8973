package main

import (
	"context"
	"log"
	"time"

	"gingallery/config"
	"gingallery/controller"
	"gingallery/database"
	"gingallery/middlewares"
	"gingallery/route"
	"gingallery/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}

	ctrl := controller.New(cfg, db, store)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimit := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateLimitReset)
	router.Use(rateLimit.Middleware())

	route.Unprotected(router, cfg, db, ctrl)
	route.Protected(router, cfg, db, ctrl)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3(ctx, cfg.S3Bucket, cfg.S3Region)
	}
	return storage.NewDisk(cfg.ImageDir)
}
