package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_exports (id TEXT PRIMARY KEY, wizard_id TEXT NOT NULL, size INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_exports")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "text", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "NO", colMap["wizard_id"].Null)
	assert.Equal(t, "integer", colMap["size"].Type)
	assert.Equal(t, "YES", colMap["size"].Null)

	// PRAGMA table_info yields no rows for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
		AddRow("Size", "BIGINT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `profile_exports`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "profile_exports")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "bigint", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (id TEXT, wizard_id TEXT)").Error)

	missing, err := MissingColumns(db, "partial", []string{"id", "wizard_id", "file_name", "size"})
	require.NoError(t, err)
	assert.Equal(t, []string{"file_name", "size"}, missing)
}
