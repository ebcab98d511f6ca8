// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect opens the database selected by Config.Driver. The database is optional:
// it only backs the export index, so callers log a failed connection and go on
// without one. SQLite connections are limited to a single open connection so
// that ":memory:" databases behave like one database.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// check uses it to compare the export index table against its model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "profile_exports")
package database
