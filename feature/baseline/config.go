package baseline

// Config holds settings for reading the item export.
type Config struct {
	// IDPattern is the regular expression an identifier must match to be read.
	IDPattern string `mapstructure:"id_pattern" default:"^oliveyoung_A"`
	// EntryDelimiter separates variant entries in the option cell.
	EntryDelimiter string `mapstructure:"entry_delimiter" default:"$$" validate:"required"`
	// FieldDelimiter separates fields of one variant entry.
	FieldDelimiter string `mapstructure:"field_delimiter" default:"||*" validate:"required"`
	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet string `mapstructure:"sheet" default:""`
}
