package export

import (
	"regexp"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// FileExtension is appended to every exported file name.
	FileExtension   = ".json"
	// TimestampFolder holds the timestamped copies.
	TimestampFolder = "profile saves"
	// TimestampLayout formats the capture time of a timestamped copy (yyyy-MM-dd_HHmmss).
	TimestampLayout = "2006-01-02_150405"

	maxFileNameBytes = 255
)

var (
	illegalChars    = regexp.MustCompile(`[/?<>\\:*|"]`)
	controlChars    = regexp.MustCompile(`[\x{00}-\x{1f}\x{80}-\x{9f}]`)
	onlyDots        = regexp.MustCompile(`^\.+$`)
	windowsReserved = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[0-9]|lpt[0-9])(\..*)?$`)
	windowsTrailing = regexp.MustCompile(`[. ]+$`)
)

// Sanitize removes the characters and names that are not safe in a file
// name on common file systems and truncates the result to 255 bytes.
func Sanitize(name string) string {
	name = norm.NFC.String(name)
	name = illegalChars.ReplaceAllString(name, "")
	name = controlChars.ReplaceAllString(name, "")
	name = onlyDots.ReplaceAllString(name, "")
	name = windowsReserved.ReplaceAllString(name, "")
	name = windowsTrailing.ReplaceAllString(name, "")
	return truncate(name, maxFileNameBytes)
}

// FileName returns the name of the exported profile of a player.
func FileName(displayName, identity string) string {
	return Sanitize(displayName+"-"+identity) + FileExtension
}

// TimestampedFileName returns the name of a timestamped copy captured at t.
func TimestampedFileName(displayName, identity string, t time.Time) string {
	return Sanitize(displayName+"-"+identity+"-"+t.Format(TimestampLayout)) + FileExtension
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
