// Package models contains the GORM models of the export index.
//
// ExportRecord maps to the 'profile_exports' table. The table is created
// with Migrate on startup and its live schema is verified by the integrity
// server check.
package models
