package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"catalog-reconciler/core/storage"
)

// Content types of rendered artifacts.
const (
	ContentTypeText     = "text/plain; charset=utf-8"
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
	ContentTypeXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Artifact is one rendered output file.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// WriteDir writes artifacts into dir, creating it when needed.
func WriteDir(dir string, artifacts []Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, a := range artifacts {
		if err := os.WriteFile(filepath.Join(dir, a.Name), a.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return nil
}

// Publish uploads artifacts under prefix and returns the object keys.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, artifacts []Artifact) ([]string, error) {
	if err := storage.EnsureBucket(ctx, client, bucket); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		key := path.Join(prefix, a.Name)
		if err := storage.Upload(ctx, client, bucket, key, a.Data, a.ContentType); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
