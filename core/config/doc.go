// Package config provides configuration management for the profile exporter.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file through godotenv. Defaults come from the `default` struct tags of each
// section, so every setting can be left unset.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit, shutdown deadline)
//   - Export: export toggles (enabled, sort_data, merge_storage, timestamped_copy) and destinations
//   - Storage: S3/MinIO credentials and bucket for the storage destination
//   - Database: MySQL or SQLite connection for the export index
//   - Log: Logging level and format
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. EXPORT_MERGE_STORAGE=false.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.FilesPath)
package config
