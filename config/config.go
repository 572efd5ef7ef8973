package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is built once in main and
// passed to the components that need it; nothing reads the environment
// after Load returns.
type Config struct {
	Addr         string
	MongoURI     string
	DatabaseName string

	JWTSecret   string
	TokenExpiry time.Duration

	// "disk" or "s3"
	StorageBackend string
	ImageDir       string
	S3Bucket       string
	S3Region       string

	AllowOrigin    string
	MaxUploadBytes int64

	RateLimit      int
	RateLimitReset time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	cfg := &Config{
		Addr:           getEnv("ADDR", ":5000"),
		MongoURI:       os.Getenv("MONGO_URI"),
		DatabaseName:   getEnv("MONGO_DATABASE", "gallery"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenExpiry:    getDuration("JWT_EXPIRES_IN", 2*time.Hour),
		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		ImageDir:       getEnv("IMAGE_DIR", "./images"),
		S3Bucket:       os.Getenv("BUCKET_NAME"),
		S3Region:       os.Getenv("AWS_REGION"),
		AllowOrigin:    getEnv("ALLOW_ORIGIN", "http://localhost:3000"),
		MaxUploadBytes: getInt64("MAX_UPLOAD_BYTES", 100*1024*1024),
		RateLimit:      getInt("RATE_LIMIT", 1000),
		RateLimitReset: getDuration("RATE_LIMIT_RESET", time.Minute),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.StorageBackend == "s3" && cfg.S3Bucket == "" {
		return nil, errors.New("BUCKET_NAME is required for the s3 backend")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
