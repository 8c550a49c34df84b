package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds input files and published reports.
	Bucket string `mapstructure:"bucket" default:"catalog"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// BaselineObject is the key of the item export workbook.
	BaselineObject string `mapstructure:"baseline_object" default:"input/items.xlsx"`
	// CrawlObject is the key of the crawl result file.
	CrawlObject string `mapstructure:"crawl_object" default:"input/crawled_data.json"`
	// ReportPrefix is the key prefix under which run artifacts are published.
	ReportPrefix string `mapstructure:"report_prefix" default:"runs"`
}
