package pricing

import "github.com/shopspring/decimal"

// Engine performs deterministic price conversion.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	surcharge decimal.Decimal
	margin    decimal.Decimal
	rate      decimal.Decimal
}

// New creates an Engine from the configuration.
// A non-positive margin falls back to 1.0.
func New(cfg Config) *Engine {
	margin := decimal.NewFromFloat(cfg.MarginMultiplier)
	if !margin.IsPositive() {
		margin = decimal.NewFromInt(1)
	}
	return &Engine{
		surcharge: decimal.NewFromInt(int64(cfg.ShippingSurcharge)),
		margin:    margin,
		rate:      decimal.NewFromFloat(cfg.ExchangeRate),
	}
}

// Convert turns a source amount into a normalized marketplace price.
func (e *Engine) Convert(source int) int {
	amount := decimal.NewFromInt(int64(source)).
		Add(e.surcharge).
		Mul(e.margin).
		Mul(e.rate).
		Truncate(0)
	return NormalizeEnding(int(amount.IntPart()))
}

// ConvertObserved converts a price read from the live site.
// Zero or negative amounts mean the price was not observed and stay 0.
func (e *Engine) ConvertObserved(source int) int {
	if source <= 0 {
		return 0
	}
	return e.Convert(source)
}

// NormalizeEnding rewrites the last decimal digit of n to 0, 8 or 9.
// Negative amounts are normalized on their magnitude.
func NormalizeEnding(n int) int {
	if n < 0 {
		return -NormalizeEnding(-n)
	}
	d := n % 10
	switch {
	case d <= 4:
		return n - d
	case d <= 8:
		return n - d + 8
	default:
		return n
	}
}
