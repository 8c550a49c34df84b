package crawl

import (
	"testing"

	"catalog-reconciler/core/pricing"
	"catalog-reconciler/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *pricing.Engine {
	return pricing.New(pricing.Config{ShippingSurcharge: 3000, MarginMultiplier: 1.0, ExchangeRate: 0.11})
}

func TestNormalizeProduct_Status(t *testing.T) {
	tests := []struct {
		name   string
		status string
		errMsg string
		want   reconcile.Status
	}{
		{"missing means success", "", "", reconcile.StatusSuccess},
		{"error message without status", "", "boom", reconcile.StatusFailed},
		{"timeout", "timeout", "slow", reconcile.StatusTimeout},
		{"error", "ERROR", "", reconcile.StatusError},
		{"failed", "failed", "", reconcile.StatusFailed},
		{"unrecognized", "partial", "", reconcile.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := NormalizeProduct(Product{ProductID: "A1", Status: tt.status, Error: tt.errMsg}, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Status)
		})
	}
}

func TestNormalizeProduct_Availability(t *testing.T) {
	tests := map[string]reconcile.Availability{
		"saleOn":   reconcile.AvailabilityOnSale,
		"on_sale":  reconcile.AvailabilityOnSale,
		"soldOut":  reconcile.AvailabilitySoldOut,
		"sold-out": reconcile.AvailabilitySoldOut,
		"unknown":  reconcile.AvailabilityUnknown,
		"":         reconcile.AvailabilityUnknown,
	}
	for in, want := range tests {
		rec, ok := NormalizeProduct(Product{ProductID: "A1", ProductStatus: in}, nil)
		require.True(t, ok)
		assert.Equal(t, want, rec.Availability, in)
	}
}

func TestNormalizeProduct_SoldOutReasonOnlyWhenNotOnSale(t *testing.T) {
	rec, _ := NormalizeProduct(Product{ProductID: "A1", ProductStatus: "saleOn", SoldOutReason: "button_hidden"}, nil)
	assert.Empty(t, rec.SoldOutReason)

	rec, _ = NormalizeProduct(Product{ProductID: "A1", ProductStatus: "soldOut", SoldOutReason: "button_hidden"}, nil)
	assert.Equal(t, reconcile.ReasonButtonHidden, rec.SoldOutReason)
}

func TestNormalizeProduct_MissingID(t *testing.T) {
	_, ok := NormalizeProduct(Product{ProductID: "  ", ProductStatus: "saleOn"}, nil)
	assert.False(t, ok)
}

func TestNormalizeProduct_Prices(t *testing.T) {
	rec, _ := NormalizeProduct(Product{ProductID: "A1", ProductStatus: "saleOn", Price: float64(15000)}, testEngine())
	assert.Equal(t, 1980, rec.BasePrice)

	rec, _ = NormalizeProduct(Product{ProductID: "A1", ProductStatus: "saleOn"}, testEngine())
	assert.Equal(t, 0, rec.BasePrice, "an unobserved price must not become the converted surcharge")

	rec, _ = NormalizeProduct(Product{ProductID: "A1", ProductStatus: "saleOn", Price: "1850"}, nil)
	assert.Equal(t, 1850, rec.BasePrice)
}

func TestNormalizeProduct_Variants(t *testing.T) {
	p := Product{
		ProductID:     "A6",
		ProductStatus: "saleOn",
		Price:         15000,
		HasOptions:    true,
		Options: []Option{
			{Index: 2, Name: "Blue", IsSoldOut: true, Price: 20000},
			{Index: 1, Name: " Red ", Price: 15000},
		},
	}

	rec, ok := NormalizeProduct(p, testEngine())
	require.True(t, ok)
	assert.True(t, rec.HasVariants)
	assert.Equal(t, []reconcile.VariantRecord{
		{Index: 1, Name: "Red", TotalPrice: 1980},
		// (20000 + 3000) * 0.11 = 2530
		{Index: 2, Name: "Blue", IsSoldOut: true, TotalPrice: 2530},
	}, rec.Variants)
}

func TestNormalizeProduct_OptionIndexFallback(t *testing.T) {
	p := Product{ProductID: "A7", HasOptions: true, Options: []Option{{Name: "S"}, {Name: "M"}}}
	rec, _ := NormalizeProduct(p, nil)
	require.Len(t, rec.Variants, 2)
	assert.Equal(t, 1, rec.Variants[0].Index)
	assert.Equal(t, 2, rec.Variants[1].Index)
}

// TestNormalizeProduct_VariantCollapse tests that a single option is read as a plain product.
func TestNormalizeProduct_VariantCollapse(t *testing.T) {
	plain := Product{ProductID: "A8", ProductStatus: "saleOn", Price: 15000}
	single := plain
	single.HasOptions = true
	single.Options = []Option{{Index: 1, Name: "Default", Price: 15000}}

	plainRec, _ := NormalizeProduct(plain, testEngine())
	singleRec, _ := NormalizeProduct(single, testEngine())
	assert.Equal(t, plainRec, singleRec)
	assert.False(t, singleRec.HasVariants)
	assert.Nil(t, singleRec.Variants)

	empty := plain
	empty.HasOptions = true
	emptyRec, _ := NormalizeProduct(empty, testEngine())
	assert.Equal(t, plainRec, emptyRec)
}

func TestNormalize(t *testing.T) {
	f, err := Load("testdata/crawl.json")
	require.NoError(t, err)

	current := Normalize(f, testEngine())
	assert.Len(t, current, 6)
	assert.Equal(t, 1870, current["A0002"].BasePrice)
	assert.Equal(t, reconcile.StatusTimeout, current["A0003"].Status)
	assert.Equal(t, reconcile.StatusFailed, current["A0005"].Status)
	assert.True(t, current["A0006"].HasVariants)
}

func TestNormalize_DuplicateKeepsLast(t *testing.T) {
	f := &File{Products: []Product{
		{ProductID: "A1", ProductStatus: "soldOut"},
		{ProductID: "A1", ProductStatus: "saleOn"},
	}}
	current := Normalize(f, nil)
	assert.Equal(t, reconcile.AvailabilityOnSale, current["A1"].Availability)
}
