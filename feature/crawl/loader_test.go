package crawl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(`{"metadata":{"timestamp":"t"},"products":[]}`))
	require.NoError(t, err)
	assert.Empty(t, f.Products)
	assert.Equal(t, "t", f.Metadata.Timestamp)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"metadata":{}}`))
	assert.ErrorIs(t, err, ErrEmptyCrawlFile)

	_, err = Decode(strings.NewReader(`{"products": [`))
	assert.Error(t, err)

	_, err = Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}
