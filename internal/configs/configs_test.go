package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "JWT_SECRET", "DATABASE_URL",
	"S3_BUCKET_NAME", "S3_ENDPOINT", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.False(t, cfg.StorageEnabled())
}

func TestMissingSecretIsFatal(t *testing.T) {
	clearEnv(t)

	_, err := loadFromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	t.Setenv("PORT", "eighty")
	_, err := loadFromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)

	t.Setenv("PORT", "80")
	_, err = loadFromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestProductionRequiresDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENVIRONMENT", "production")

	_, err := loadFromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)

	t.Setenv("DATABASE_URL", "postgres://db/ysocial")
	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/ysocial", cfg.DatabaseDSN)
}

func TestAllowedOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", " https://y.example , ,http://localhost:3000")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://y.example", "http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestS3AllOrNothing(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("S3_BUCKET_NAME", "avatars")

	_, err := loadFromEnv()
	assert.ErrorIs(t, err, ErrConfiguration)

	t.Setenv("S3_ENDPOINT", "https://s3.example")
	t.Setenv("S3_ACCESS_KEY_ID", "id")
	t.Setenv("S3_SECRET_ACCESS_KEY", "key")

	cfg, err := loadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PORT")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\nPORT=9090\n"), 0o600))
	t.Chdir(dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.JWTSecret)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadDatabaseDSNNeedsNoSecret(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	dsn, err := LoadDatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, defaultDevDSN, dsn)

	t.Setenv("ENVIRONMENT", "production")
	_, err = LoadDatabaseDSN()
	assert.ErrorIs(t, err, ErrConfiguration)

	t.Setenv("DATABASE_URL", "postgres://db/ysocial")
	dsn, err = LoadDatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/ysocial", dsn)
}
