package report

// Config holds settings for report output.
type Config struct {
	// OutputDir is the local directory artifacts are written to.
	OutputDir string `mapstructure:"output_dir" default:"output"`
	// Workbooks enables the bulk upload workbooks.
	Workbooks bool `mapstructure:"workbooks" default:"true"`
	// Locale selects number grouping in detail lines (BCP 47 tag).
	Locale string `mapstructure:"locale" default:"en"`
}
