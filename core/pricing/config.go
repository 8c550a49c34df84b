package pricing

// Config holds the conversion constants.
type Config struct {
	// ShippingSurcharge is added to every source amount before conversion.
	ShippingSurcharge int `mapstructure:"shipping_surcharge" default:"3000" validate:"gte=0"`
	// MarginMultiplier scales the amount after the surcharge.
	MarginMultiplier float64 `mapstructure:"margin_multiplier" default:"1.0" validate:"gt=0"`
	// ExchangeRate converts the source currency into the target currency.
	ExchangeRate float64 `mapstructure:"exchange_rate" default:"0.11" validate:"gt=0"`
}
