package baseline

import (
	"strconv"
	"strings"

	"catalog-reconciler/core/utils"
)

const variantFieldCount = 5

// VariantEntry is one decoded entry of a packed option cell.
type VariantEntry struct {
	Tag             string
	Name            string
	AdditionalPrice int
	Stock           int
	// StockRecorded is false when the stock field was blank or not a number.
	StockRecorded bool
	Code          string
	// Index is the 1-based variant index taken from the code's trailing segment.
	// Entries whose code carries no index, or repeats one already taken, get the
	// lowest index no other entry of the cell uses.
	Index int
}

// Decoder splits packed option cells.
type Decoder struct {
	EntryDelimiter string
	FieldDelimiter string
}

// DefaultDecoder uses the marketplace delimiters.
var DefaultDecoder = Decoder{EntryDelimiter: "$$", FieldDelimiter: "||*"}

// DecodeVariantCell decodes text with the default delimiters.
func DecodeVariantCell(text string) []VariantEntry {
	return DefaultDecoder.Decode(text)
}

// Decode returns the well-formed entries of text in cell order.
func (d Decoder) Decode(text string) []VariantEntry {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var entries []VariantEntry
	used := make(map[int]bool)
	for _, raw := range strings.Split(text, d.EntryDelimiter) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		fields := strings.Split(raw, d.FieldDelimiter)
		if len(fields) < variantFieldCount {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		stock, recorded := utils.ParseInt(fields[3])
		entry := VariantEntry{
			Tag:             fields[0],
			Name:            fields[1],
			AdditionalPrice: utils.ToInt(fields[2]),
			Stock:           stock,
			StockRecorded:   recorded,
			Code:            fields[4],
		}
		if n := codeIndex(entry.Code); n > 0 && !used[n] {
			entry.Index = n
			used[n] = true
		}
		entries = append(entries, entry)
	}

	next := 1
	for i := range entries {
		if entries[i].Index > 0 {
			continue
		}
		for used[next] {
			next++
		}
		entries[i].Index = next
		used[next] = true
	}
	return entries
}

// codeIndex returns the positive integer after the last underscore of code, or 0.
func codeIndex(code string) int {
	i := strings.LastIndex(code, "_")
	if i < 0 || i == len(code)-1 {
		return 0
	}
	n, err := strconv.Atoi(code[i+1:])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
