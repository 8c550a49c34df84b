// Package pricing converts source-currency prices into marketplace prices.
//
// A conversion adds a fixed shipping surcharge, applies the margin multiplier and the
// exchange rate, truncates to an integer and finally normalizes the last digit to the
// marketplace convention:
//
//	last digit 0-4  -> 0   (1234 -> 1230)
//	last digit 5-8  -> 8   (1236 -> 1238)
//	last digit 9    -> 9   (1239 -> 1239)
//
// The arithmetic runs on shopspring/decimal so that a rate such as 0.11 does not pick up
// binary floating point error before truncation.
//
// # Usage
//
//	engine := pricing.New(cfg.Pricing)
//	yen := engine.Convert(15000) // (15000 + 3000) * 1.0 * 0.11 = 1980
//
// Only whole prices (base prices and variant totals) are converted. A variant's
// additional price is always derived as the difference of two converted totals.
package pricing
