// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grouproster/internal/platform/config"
)

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

/*
TestLoad_Defaults checks defaults with the memory driver.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", config.DriverMemory)

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.EnsureSchema)
	assert.Empty(t, cfg.AllowedOrigins())
}

/*
TestLoad_Validation covers the storage driver rules.
*/
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		isValid bool
	}{
		{"postgres_with_dsn", config.DriverPostgres, "postgres://localhost/roster", true},
		{"postgres_without_dsn", config.DriverPostgres, "", false},
		{"memory", config.DriverMemory, "", true},
		{"unknown", "sqlite", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", tt.driver)
			t.Setenv("DATABASE_URL", tt.dsn)

			_, err := config.Load(missingFile(t))
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestLoad_DotEnv verifies a .env file fills unset variables without overriding exported ones.
*/
func TestLoad_DotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("STORAGE_DRIVER=memory\nSERVER_PORT=9090\nEXTRA_ORIGINS= roster.example , ,admin.example\n"), 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_DRIVER", "")
	os.Unsetenv("STORAGE_DRIVER")
	t.Setenv("EXTRA_ORIGINS", "")
	os.Unsetenv("EXTRA_ORIGINS")

	cfg, err := config.Load(file)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.ServerPort)
	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"roster.example", "admin.example"}, cfg.AllowedOrigins())
}
