// Package catalog provides the reconcile.Adapter implementations that load the item
// export workbook and the crawl result file, either from local paths or from an object
// storage bucket.
package catalog
