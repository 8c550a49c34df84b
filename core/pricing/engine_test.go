package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultConfig() Config {
	return Config{ShippingSurcharge: 3000, MarginMultiplier: 1.0, ExchangeRate: 0.11}
}

// TestNormalizeEnding tests the last-digit rounding rule.
func TestNormalizeEnding(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1230, 1230},
		{1234, 1230},
		{1235, 1238},
		{1238, 1238},
		{1239, 1239},
		{9, 9},
		{4, 0},
		{-1236, -1238},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEnding(tt.in), "NormalizeEnding(%d)", tt.in)
	}
}

// TestConvert tests the full conversion pipeline.
func TestConvert(t *testing.T) {
	e := New(defaultConfig())

	tests := []struct {
		name   string
		source int
		want   int
	}{
		// (15000 + 3000) * 0.11 = 1980
		{"exact", 15000, 1980},
		// (14000 + 3000) * 0.11 = 1870
		{"ends in zero", 14000, 1870},
		// (14500 + 3000) * 0.11 = 1925 -> 1928
		{"rounds to eight", 14500, 1928},
		// (14900 + 3000) * 0.11 = 1969 -> 1969
		{"keeps nine", 14900, 1969},
		// (14120 + 3000) * 0.11 = 1883.2 -> 1883 -> 1880
		{"truncates then rounds down", 14120, 1880},
		{"zero source still carries surcharge", 0, 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Convert(tt.source))
		})
	}
}

func TestConvert_Margin(t *testing.T) {
	cfg := defaultConfig()
	cfg.MarginMultiplier = 1.5
	e := New(cfg)

	// (15000 + 3000) * 1.5 * 0.11 = 2970
	assert.Equal(t, 2970, e.Convert(15000))
}

func TestNew_NonPositiveMarginFallsBack(t *testing.T) {
	cfg := defaultConfig()
	cfg.MarginMultiplier = 0
	assert.Equal(t, New(defaultConfig()).Convert(15000), New(cfg).Convert(15000))
}

// TestConvert_Deterministic tests that repeated conversions agree and always end in 0, 8 or 9.
func TestConvert_Deterministic(t *testing.T) {
	e := New(defaultConfig())
	for source := 0; source < 50000; source += 137 {
		first := e.Convert(source)
		assert.Equal(t, first, e.Convert(source))
		assert.Contains(t, []int{0, 8, 9}, first%10, "source %d converted to %d", source, first)
	}
}

func TestConvertObserved(t *testing.T) {
	e := New(defaultConfig())
	assert.Equal(t, 0, e.ConvertObserved(0))
	assert.Equal(t, 0, e.ConvertObserved(-5))
	assert.Equal(t, 1980, e.ConvertObserved(15000))
}
