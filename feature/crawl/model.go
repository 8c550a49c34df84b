package crawl

// File is a crawl result document.
type File struct {
	Metadata Metadata  `json:"metadata"`
	Products []Product `json:"products"`
}

// Metadata describes a crawl run.
type Metadata struct {
	TotalCrawled int    `json:"total_crawled"`
	Stats        Stats  `json:"stats"`
	Timestamp    string `json:"timestamp"`
}

// Stats are the counters written by the crawler.
type Stats struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// Product is one crawled page as written by the crawler.
// Price fields accept numbers or numeric strings.
type Product struct {
	ProductID     string   `json:"product_id"`
	URL           string   `json:"url,omitempty"`
	Status        string   `json:"status,omitempty"`
	ProductStatus string   `json:"product_status,omitempty"`
	SoldOutReason string   `json:"soldout_reason,omitempty"`
	Error         string   `json:"error,omitempty"`
	Timestamp     string   `json:"timestamp,omitempty"`
	Price         any      `json:"price,omitempty"`
	HasOptions    bool     `json:"has_options,omitempty"`
	Options       []Option `json:"options,omitempty"`
}

// Option is one crawled variant. Price is the variant's total source price.
type Option struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	IsSoldOut bool   `json:"is_soldout"`
	Price     any    `json:"price,omitempty"`
}
