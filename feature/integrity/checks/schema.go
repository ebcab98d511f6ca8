package checks

import (
	"fmt"
	"reflect"
	"strings"

	"profile-exporter/core/database"
	"profile-exporter/feature/export/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of an export index schema check.
type SchemaReport struct {
	Dialect string                 `json:"dialect"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

type tabler interface {
	TableName() string
}

// IndexModels are the models whose tables make up the export index.
var IndexModels = []tabler{models.ExportRecord{}}

// CheckIndexSchema compares the export index tables against their GORM models.
// Column names come from the `column:` tag and types from the optional `type:` tag.
func CheckIndexSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Dialect: db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range IndexModels {
		tableName := model.TableName()
		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}
		tbl := compareTable(reflect.TypeOf(model), actualCols)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

func compareTable(model reflect.Type, actualCols []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if len(actualCols) == 0 {
		tbl.Status = "error"
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		gormTag := model.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		col, exists := actual[colName]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = "error"
			continue
		}

		// SQLite reports the declared type verbatim, MySQL its own spelling;
		// containment tolerates display widths and unsigned suffixes.
		if expType := strings.ToLower(parseGormType(gormTag)); expType != "" && !strings.Contains(col.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			tbl.Status = "error"
		}
	}
	return tbl
}

func parseGormColumn(tag string) string {
	return gormTagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return gormTagValue(tag, "type:")
}

func gormTagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
