package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeVariantCell tests the packed option cell tokenizer.
func TestDecodeVariantCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []VariantEntry
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{
			name: "two entries",
			cell: "Color||*Red||*0||*120||*oliveyoung_A1_1$$Color||*Blue||*500||*80||*oliveyoung_A1_2",
			want: []VariantEntry{
				{Tag: "Color", Name: "Red", AdditionalPrice: 0, Stock: 120, StockRecorded: true, Code: "oliveyoung_A1_1", Index: 1},
				{Tag: "Color", Name: "Blue", AdditionalPrice: 500, Stock: 80, StockRecorded: true, Code: "oliveyoung_A1_2", Index: 2},
			},
		},
		{
			name: "malformed entry dropped without affecting siblings",
			cell: "Color||*Red||*0||*120||*oliveyoung_A1_1$$Color||*Broken||*10$$Color||*Green||*100||*5||*oliveyoung_A1_3",
			want: []VariantEntry{
				{Tag: "Color", Name: "Red", AdditionalPrice: 0, Stock: 120, StockRecorded: true, Code: "oliveyoung_A1_1", Index: 1},
				{Tag: "Color", Name: "Green", AdditionalPrice: 100, Stock: 5, StockRecorded: true, Code: "oliveyoung_A1_3", Index: 3},
			},
		},
		{
			name: "non-numeric fields default to zero",
			cell: "Size||*L||*abc||*||*oliveyoung_A1_1",
			want: []VariantEntry{
				{Tag: "Size", Name: "L", AdditionalPrice: 0, Stock: 0, Code: "oliveyoung_A1_1", Index: 1},
			},
		},
		{
			name: "code without index takes the next free index",
			cell: "Size||*S||*0||*1||*code-a$$Size||*M||*0||*1||*code_b",
			want: []VariantEntry{
				{Tag: "Size", Name: "S", Stock: 1, StockRecorded: true, Code: "code-a", Index: 1},
				{Tag: "Size", Name: "M", Stock: 1, StockRecorded: true, Code: "code_b", Index: 2},
			},
		},
		{
			name: "uncoded entry skips an index a later code claims",
			cell: "t||*a||*100||*5||*X$$t||*b||*200||*3||*X_1",
			want: []VariantEntry{
				{Tag: "t", Name: "a", AdditionalPrice: 100, Stock: 5, StockRecorded: true, Code: "X", Index: 2},
				{Tag: "t", Name: "b", AdditionalPrice: 200, Stock: 3, StockRecorded: true, Code: "X_1", Index: 1},
			},
		},
		{
			name: "malformed entries do not shift fallback indexes",
			cell: "bad$$$$t||*a||*0||*1||*X$$t||*b||*0||*1||*X_3",
			want: []VariantEntry{
				{Tag: "t", Name: "a", Stock: 1, StockRecorded: true, Code: "X", Index: 1},
				{Tag: "t", Name: "b", Stock: 1, StockRecorded: true, Code: "X_3", Index: 3},
			},
		},
		{
			name: "repeated code index falls back",
			cell: "t||*a||*0||*1||*X_1$$t||*b||*0||*1||*X_1",
			want: []VariantEntry{
				{Tag: "t", Name: "a", Stock: 1, StockRecorded: true, Code: "X_1", Index: 1},
				{Tag: "t", Name: "b", Stock: 1, StockRecorded: true, Code: "X_1", Index: 2},
			},
		},
		{
			name: "trailing delimiter and padding",
			cell: " Color ||* Red ||* 1,000 ||* 3 ||* A1_4 $$",
			want: []VariantEntry{
				{Tag: "Color", Name: "Red", AdditionalPrice: 1000, Stock: 3, StockRecorded: true, Code: "A1_4", Index: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeVariantCell(tt.cell))
		})
	}
}

func TestDecoder_CustomDelimiters(t *testing.T) {
	d := Decoder{EntryDelimiter: ";", FieldDelimiter: "|"}
	entries := d.Decode("Color|Red|100|2|X_1;Color|Blue")
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].AdditionalPrice)
}

// TestDecodeVariantCell_Count tests that the entry count matches the well-formed entries.
func TestDecodeVariantCell_Count(t *testing.T) {
	cells := map[string]int{
		"a||*b||*1||*1||*c_1":                               1,
		"a||*b||*1||*1||*c_1$$a||*b||*1||*1||*c_2":          2,
		"a||*b||*1||*1||*c_1$$a||*b$$a||*b||*1||*1||*c_3":   2,
		"a||*b||*1||*1$$a||*b||*1":                          0,
		"a||*b||*1||*1||*c_1||*extra$$a||*b||*1||*1||*c_2": 2,
	}
	for cell, want := range cells {
		assert.Len(t, DecodeVariantCell(cell), want, cell)
	}
}
