// Package integrity checks that the export destinations are usable.
//
// # Checks Provided
//
//   - Local: the export folder and its timestamp folder exist, and every saved
//     .json file decodes as a profile with an identity and a building list.
//   - Structure: the export prefix and its timestamp folder exist in the bucket.
//   - Schema: the export index tables match their GORM models (columns, types).
//
// Checks that do not apply to the configuration (no storage client, no
// database) report that instead of failing.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all applicable checks.
//   - GET /integrity/local : Local export folder (supports ?fix=true).
//   - GET /integrity/structure : Bucket folders (supports ?fix=true).
//   - GET /integrity/schema : Export index schema (supports ?fix=true, which migrates).
package integrity
