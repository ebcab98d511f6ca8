// Package notify carries user-facing outcome messages ("Saved profile data
// to ...", missing data warnings) out of the exporter.
//
// The exporter only depends on the Notifier interface. ZapNotifier writes
// to the application log, Feed keeps the latest messages for the HTTP API
// and Fanout combines several notifiers.
package notify
