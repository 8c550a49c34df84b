package checks

import (
	"fmt"
	"slices"

	"catalog-reconciler/core/database"
	"catalog-reconciler/feature/runs"

	"gorm.io/gorm"
)

// HistoryReport is the result of a run history schema check.
type HistoryReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the model columns a table lacks.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// HistoryModels are the models whose tables a history check verifies.
var HistoryModels = []any{&runs.Run{}, &runs.Delta{}}

// CheckHistory verifies the history tables using the GORM models as the source of truth.
func CheckHistory(db *gorm.DB) (*HistoryReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &HistoryReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
	}

	for _, model := range HistoryModels {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model: %w", err)
		}
		table := stmt.Schema.Table
		expected := slices.Clone(stmt.Schema.DBNames)

		if !db.Migrator().HasTable(table) {
			report.Matched = false
			report.Tables[table] = TableReport{MissingColumns: expected, Status: "missing"}
			continue
		}

		missing, err := database.MissingColumns(db, table, expected)
		if err != nil {
			report.Matched = false
			report.Errors = append(report.Errors, err.Error())
			report.Tables[table] = TableReport{Status: "error"}
			continue
		}

		status := "ok"
		if len(missing) > 0 {
			status = "error"
			report.Matched = false
		}
		report.Tables[table] = TableReport{MissingColumns: missing, Status: status}
	}

	return report, nil
}
