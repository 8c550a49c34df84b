package baseline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"catalog-reconciler/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Column headers of the item export.
const (
	ColumnIdentifier = "seller_unique_item_id"
	ColumnQuantity   = "quantity"
	ColumnOptionInfo = "option_info"
)

// priceColumns are accepted price headers, in order of preference.
var priceColumns = []string{"price_yen", "price", "sell_price"}

var (
	// ErrMissingIdentifierColumn is returned when no header row names the identifier column.
	ErrMissingIdentifierColumn = errors.New("baseline: identifier column not found")
	// ErrMissingColumn is returned when the header row lacks a required column.
	ErrMissingColumn = errors.New("baseline: required column not found")
)

// ReadWorkbook reads the item export from r and parses it.
// sheet selects the worksheet; empty means the first one.
func ReadWorkbook(r io.Reader, sheet string, p *Parser) (reconcile.Baseline, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readFile(f, sheet, p)
}

// LoadWorkbook reads the item export from a file.
func LoadWorkbook(path, sheet string, p *Parser) (reconcile.Baseline, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return readFile(f, sheet, p)
}

func readFile(f *excelize.File, sheet string, p *Parser) (reconcile.Baseline, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets: %w", ErrMissingIdentifierColumn)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	parsed, err := Rows(rows)
	if err != nil {
		return nil, err
	}
	return p.Parse(parsed), nil
}

// Rows maps raw sheet rows to Rows using the first header row that names the
// identifier column. Everything above the header is ignored.
func Rows(sheet [][]string) ([]Row, error) {
	headerAt := -1
	var cols map[string]int
	for i, cells := range sheet {
		idx := headerIndex(cells)
		if _, ok := idx[ColumnIdentifier]; ok {
			headerAt, cols = i, idx
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrMissingIdentifierColumn
	}

	priceCol := -1
	for _, name := range priceColumns {
		if c, ok := cols[name]; ok {
			priceCol = c
			break
		}
	}
	if priceCol < 0 {
		return nil, fmt.Errorf("%w: price", ErrMissingColumn)
	}
	qtyCol, ok := cols[ColumnQuantity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnQuantity)
	}
	optCol, hasOptions := cols[ColumnOptionInfo]
	idCol := cols[ColumnIdentifier]

	out := make([]Row, 0, len(sheet)-headerAt-1)
	for _, cells := range sheet[headerAt+1:] {
		row := Row{
			Identifier: cell(cells, idCol),
			Price:      cell(cells, priceCol),
			Quantity:   cell(cells, qtyCol),
		}
		if hasOptions {
			row.VariantInfo = cell(cells, optCol)
		}
		out = append(out, row)
	}
	return out, nil
}

func headerIndex(cells []string) map[string]int {
	idx := make(map[string]int, len(cells))
	for i, c := range cells {
		name := strings.ToLower(strings.TrimSpace(c))
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
