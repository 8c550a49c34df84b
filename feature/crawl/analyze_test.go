package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	f, err := Load("testdata/crawl.json")
	require.NoError(t, err)

	a := Analyze(f)

	assert.Equal(t, "2025-10-01T09:00:00", a.Timestamp)
	assert.Equal(t, AnalysisSummary{TotalProducts: 6, SuccessfulCount: 3, SoldOutCount: 1, ErrorCount: 3}, a.Summary)
	assert.Equal(t, []string{"A0002"}, a.SoldOutIDs)
	assert.Equal(t, []string{"A0001", "A0002", "A0006"}, a.SuccessfulIDs)
	assert.Equal(t, []string{"A0003"}, a.ErrorIDs.Timeout)
	// A0005 has no product_status either, so it lands in the unknown bucket first.
	assert.Equal(t, []string{"A0004", "A0005"}, a.ErrorIDs.Unknown)
	assert.Empty(t, a.ErrorIDs.Failed)
	assert.Equal(t, map[string]int{"button_hidden": 1}, a.SoldOutReasons)
	require.Len(t, a.SoldOutDetails, 1)
	assert.Equal(t, "https://example.test/A0002", a.SoldOutDetails[0].URL)
	assert.InDelta(t, 0.5, a.SuccessRate(), 1e-9)
}

func TestAnalyze_FailedBucket(t *testing.T) {
	f := &File{Products: []Product{
		{ProductID: "A1", ProductStatus: "saleOn", Status: "error", Error: "500"},
		{ProductID: "A2", ProductStatus: "soldOut"},
	}}

	a := Analyze(f)
	assert.Equal(t, []string{"A1"}, a.ErrorIDs.Failed)
	assert.Equal(t, []string{"A2"}, a.SuccessfulIDs)
	assert.Equal(t, map[string]int{"unknown": 1}, a.SoldOutReasons)
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze(&File{Products: []Product{}})
	assert.Equal(t, 0.0, a.SuccessRate())
	assert.Equal(t, 0, a.ErrorIDs.Count())
}
