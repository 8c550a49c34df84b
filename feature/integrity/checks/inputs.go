package checks

import (
	"context"

	"catalog-reconciler/core/storage"
)

// CheckInputs returns the object keys that are not present in the bucket.
func CheckInputs(ctx context.Context, client storage.Client, bucket string, keys []string) ([]string, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range keys {
		ok, err := storage.Exists(ctx, client, bucket, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
