package crawl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyCrawlFile is returned when a document has no products collection.
var ErrEmptyCrawlFile = errors.New("crawl: products collection is missing")

// Decode reads a crawl document from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode crawl file: %w", err)
	}
	if f.Products == nil {
		return nil, ErrEmptyCrawlFile
	}
	return &f, nil
}

// Load reads a crawl document from disk.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crawl file: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}
