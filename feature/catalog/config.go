package catalog

import (
	"time"

	"catalog-reconciler/core/reconcile"
)

// Config holds reconciliation settings shared by every input source.
type Config struct {
	// IDPrefix turns a crawled product id into the seller identifier used by the export.
	IDPrefix string `mapstructure:"id_prefix" default:"oliveyoung_" validate:"required"`
	// RestockQuantity is the quantity planned for restocked items and options.
	RestockQuantity int `mapstructure:"restock_quantity" default:"200" validate:"gt=0"`
	// RestoreQuantity is the item quantity planned when an option product is on sale again.
	RestoreQuantity int `mapstructure:"restore_quantity" default:"1" validate:"gt=0"`
	// CacheTTLSeconds keeps loaded inputs for repeated runs. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0" validate:"gte=0"`
}

// Options converts the config into reconciliation options.
func (c Config) Options() reconcile.Options {
	return reconcile.Options{
		IDPrefix:        c.IDPrefix,
		RestockQuantity: c.RestockQuantity,
		RestoreQuantity: c.RestoreQuantity,
	}
}

// Spec returns a reconciliation spec for adapter.
func (c Config) Spec(adapter reconcile.Adapter) *reconcile.Spec {
	return &reconcile.Spec{
		Adapter:  adapter,
		CacheTTL: time.Duration(c.CacheTTLSeconds) * time.Second,
		Options:  c.Options(),
	}
}
