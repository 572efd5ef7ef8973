package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "gallery", cfg.DatabaseName)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "disk", cfg.StorageBackend)
	assert.Equal(t, "./images", cfg.ImageDir)
	assert.Equal(t, int64(100*1024*1024), cfg.MaxUploadBytes)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", ":9000")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("BUCKET_NAME", "gallery-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, "gallery-bucket", cfg.S3Bucket)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.TokenExpiry)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadS3RequiresBucket(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("BUCKET_NAME", "")

	_, err := Load()
	assert.Error(t, err)
}
