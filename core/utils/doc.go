// Package utils provides small conversion helpers shared by the loaders.
//
// Spreadsheet cells and crawl JSON fields arrive as loosely typed values
// (strings with thousands separators, float64 from encoding/json, empty cells).
// The helpers here never fail: anything that cannot be read as a number becomes 0,
// which is the tolerant default the baseline and crawl loaders rely on.
package utils
