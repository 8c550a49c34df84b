// Package config provides configuration management for the catalog reconciler.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, and validates the result with go-playground/validator.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials, bucket and input object keys
//   - Log: Logging level and format
//   - Database: run history store (sqlite or mysql)
//   - Pricing: shipping surcharge, margin and exchange rate
//   - Catalog: seller id prefix and planned quantities
//   - Baseline: identifier pattern and option cell delimiters
//   - Report: output directory and workbook generation
//
// Every key maps to an environment variable by upper-casing it and replacing dots with
// underscores (pricing.exchange_rate becomes PRICING_EXCHANGE_RATE).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Pricing.ExchangeRate)
package config
