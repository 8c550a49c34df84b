package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
	assert.Equal(t, "input/items.xlsx", cfg.Storage.BaselineObject)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 3000, cfg.Pricing.ShippingSurcharge)
	assert.InDelta(t, 0.11, cfg.Pricing.ExchangeRate, 1e-9)
	assert.InDelta(t, 1.0, cfg.Pricing.MarginMultiplier, 1e-9)
	assert.Equal(t, "oliveyoung_", cfg.Catalog.IDPrefix)
	assert.Equal(t, 200, cfg.Catalog.RestockQuantity)
	assert.Equal(t, 1, cfg.Catalog.RestoreQuantity)
	assert.Equal(t, "$$", cfg.Baseline.EntryDelimiter)
	assert.Equal(t, "||*", cfg.Baseline.FieldDelimiter)
	assert.Equal(t, "output", cfg.Report.OutputDir)
	assert.True(t, cfg.Report.Workbooks)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PRICING_EXCHANGE_RATE", "0.12")
	t.Setenv("CATALOG_RESTOCK_QUANTITY", "50")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.InDelta(t, 0.12, cfg.Pricing.ExchangeRate, 1e-9)
	assert.Equal(t, 50, cfg.Catalog.RestockQuantity)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_BUCKET=reports\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("STORAGE_BUCKET") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.Storage.Bucket)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"Zero Rate", "PRICING_EXCHANGE_RATE", "0", `Pricing.ExchangeRate failed "gt"`},
		{"Zero Margin", "PRICING_MARGIN_MULTIPLIER", "0", `Pricing.MarginMultiplier failed "gt"`},
		{"Zero Restock", "CATALOG_RESTOCK_QUANTITY", "0", `Catalog.RestockQuantity failed "gt"`},
		{"Unknown Driver", "DATABASE_DRIVER", "oracle", `Database.Driver failed "oneof"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig(t.TempDir())
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
