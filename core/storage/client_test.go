package storage_test

import (
	"testing"

	"catalog-reconciler/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"Plain Endpoint", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "catalog"}},
		{"HTTP Scheme Stripped", storage.Config{Endpoint: "http://minio.internal:9000", AccessKey: "k", SecretKey: "s"}},
		{"HTTPS With Region", storage.Config{Endpoint: "https://s3.ap-northeast-1.amazonaws.com", UseSSL: true, Region: "ap-northeast-1"}},
		{"Zero Timeout Falls Back", storage.Config{Endpoint: "localhost:9000", TimeoutSeconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	_, err := storage.NewClient(storage.Config{Endpoint: "-minio-:9000"})
	assert.ErrorContains(t, err, "failed to create minio client")
}
