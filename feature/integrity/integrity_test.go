package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"catalog-reconciler/core/storage"
	"catalog-reconciler/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStorageConfig() storage.Config {
	return storage.Config{
		Bucket:         "catalog",
		BaselineObject: "input/items.xlsx",
		CrawlObject:    "input/crawled_data.json",
		ReportPrefix:   "runs",
	}
}

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	feature := NewFeature(mockClient, testStorageConfig(), zap.NewNop(), nil)
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), testStorageConfig(), zap.NewNop(), nil)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestService_RequiredFolders(t *testing.T) {
	svc := NewService(nil, testStorageConfig(), zap.NewNop(), nil)
	assert.Equal(t, []string{"input", "runs"}, svc.RequiredFolders())

	cfg := testStorageConfig()
	cfg.CrawlObject = "crawl/latest.json"
	cfg.ReportPrefix = ""
	svc = NewService(nil, cfg, zap.NewNop(), nil)
	assert.Equal(t, []string{"input", "crawl"}, svc.RequiredFolders())
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return(mocks.Listing())
	mockClient.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	t.Run("Check", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "checked", body["status"])
		assert.Len(t, body["missing"], 2)
	})

	t.Run("Fix", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "fixed", body["status"])
		mockClient.AssertNumberOfCalls(t, "PutObject", 2)
	})
}

func TestHandleInputsCheck_BucketMissing(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "catalog").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/inputs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleHistoryCheck_Disabled(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return(mocks.Listing())
	mockClient.On("StatObject", mock.Anything, "catalog", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, mocks.NoSuchKey(""))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["structure"]["status"])
	assert.Len(t, body["inputs"]["missing"], 2)
	assert.Equal(t, "error", body["history"]["status"])
}
