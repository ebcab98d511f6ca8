// Package utils provides common utility functions for the profile exporter.
// It includes helpers for loose scalar conversion and the three-way scalar
// comparison the ordering engine composes its comparators from.
package utils
