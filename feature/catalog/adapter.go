package catalog

import (
	"context"
	"fmt"

	"catalog-reconciler/core/pricing"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/baseline"
	"catalog-reconciler/feature/crawl"

	"github.com/minio/minio-go/v7"
)

// FileAdapter reads both inputs from the local filesystem.
type FileAdapter struct {
	BaselinePath string
	CrawlPath    string
	Sheet        string

	parser *baseline.Parser
	engine *pricing.Engine
}

// NewFileAdapter creates an adapter over local files.
func NewFileAdapter(baselinePath, crawlPath, sheet string, parser *baseline.Parser, engine *pricing.Engine) *FileAdapter {
	return &FileAdapter{
		BaselinePath: baselinePath,
		CrawlPath:    crawlPath,
		Sheet:        sheet,
		parser:       parser,
		engine:       engine,
	}
}

// Name returns the adapter name including both paths.
func (a *FileAdapter) Name() string {
	return "file:" + a.BaselinePath + "," + a.CrawlPath
}

// LoadBaseline reads the item export workbook.
func (a *FileAdapter) LoadBaseline(ctx context.Context) (reconcile.Baseline, error) {
	return baseline.LoadWorkbook(a.BaselinePath, a.Sheet, a.parser)
}

// LoadCurrent reads and normalizes the crawl file.
func (a *FileAdapter) LoadCurrent(ctx context.Context) (reconcile.Current, error) {
	f, err := crawl.Load(a.CrawlPath)
	if err != nil {
		return nil, err
	}
	return crawl.Normalize(f, a.engine), nil
}

// BucketAdapter reads both inputs from object storage.
type BucketAdapter struct {
	Bucket         string
	BaselineObject string
	CrawlObject    string
	Sheet          string

	client storage.Client
	parser *baseline.Parser
	engine *pricing.Engine
}

// NewBucketAdapter creates an adapter over two objects of one bucket.
func NewBucketAdapter(client storage.Client, bucket, baselineObject, crawlObject, sheet string, parser *baseline.Parser, engine *pricing.Engine) *BucketAdapter {
	return &BucketAdapter{
		Bucket:         bucket,
		BaselineObject: baselineObject,
		CrawlObject:    crawlObject,
		Sheet:          sheet,
		client:         client,
		parser:         parser,
		engine:         engine,
	}
}

// Name returns the adapter name including bucket and object keys.
func (a *BucketAdapter) Name() string {
	return "bucket:" + a.Bucket + "/" + a.BaselineObject + "," + a.CrawlObject
}

// LoadBaseline downloads and parses the item export workbook.
func (a *BucketAdapter) LoadBaseline(ctx context.Context) (reconcile.Baseline, error) {
	obj, err := a.client.GetObject(ctx, a.Bucket, a.BaselineObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", a.BaselineObject, err)
	}
	defer obj.Close()

	return baseline.ReadWorkbook(obj, a.Sheet, a.parser)
}

// LoadCurrent downloads and normalizes the crawl file.
func (a *BucketAdapter) LoadCurrent(ctx context.Context) (reconcile.Current, error) {
	obj, err := a.client.GetObject(ctx, a.Bucket, a.CrawlObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", a.CrawlObject, err)
	}
	defer obj.Close()

	f, err := crawl.Decode(obj)
	if err != nil {
		return nil, err
	}
	return crawl.Normalize(f, a.engine), nil
}
