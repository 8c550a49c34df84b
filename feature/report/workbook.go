package report

import (
	"fmt"

	"catalog-reconciler/core/reconcile"

	"github.com/xuri/excelize/v2"
)

const workbookSheet = "Sheet1"

var (
	updateHeader = []any{"seller_unique_item_id", "seller_unique_option_id", "edit_type", "Price", "quantity"}
	deleteHeader = []any{"seller_unique_item_id", "item_status_Y/N/D"}
)

// Workbooks renders one upload workbook per non-empty phase of the plan.
func (a *Assembler) Workbooks(plan *reconcile.UpdatePlan) ([]Artifact, error) {
	var out []Artifact
	for _, ph := range plan.Phases {
		if len(ph.Actions) == 0 {
			continue
		}
		rows := make([][]any, 0, len(ph.Actions)+1)
		if ph.Name == reconcile.PhaseDelete {
			rows = append(rows, deleteHeader)
			for _, act := range ph.Actions {
				rows = append(rows, []any{act.ItemID, "D"})
			}
		} else {
			rows = append(rows, updateHeader)
			for _, act := range ph.Actions {
				rows = append(rows, []any{act.ItemID, act.OptionID, act.Type.EditType(), cell(act.Price), cell(act.Quantity)})
			}
		}

		data, err := buildWorkbook(rows)
		if err != nil {
			return nil, fmt.Errorf("build %s workbook: %w", ph.Name, err)
		}
		out = append(out, Artifact{Name: WorkbookName(ph.Name), ContentType: ContentTypeXLSX, Data: data})
	}
	return out, nil
}

func buildWorkbook(rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(workbookSheet, addr, &row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
