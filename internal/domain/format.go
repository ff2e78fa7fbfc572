package domain

import (
	"fmt"
	"time"
)

// FormatSize renders a byte count the way the vault lists it
func FormatSize(b uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case b < kb:
		return fmt.Sprintf("%d B", b)
	case b < mb:
		return fmt.Sprintf("%.1f KB", float64(b)/kb)
	case b < gb:
		return fmt.Sprintf("%.2f MB", float64(b)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(b)/gb)
	}
}

// FormatTimestamp renders unix seconds in local time
func FormatTimestamp(unix int64) string {
	return time.Unix(unix, 0).Format("02/01/2006 15:04")
}

// DefaultSnapshotName names an indexing run after its day
func DefaultSnapshotName(now time.Time) string {
	return now.Format("02-01-2006")
}

// DefaultArchiveName suggests a zip name for the given sources
func DefaultArchiveName(paths []string) string {
	if len(paths) == 1 {
		if stem := Stem(paths[0]); stem != "" {
			return stem
		}
	}
	return "archive"
}
