package application

import "smartvault/internal/domain"

// Re-export domain types for use by adapters
type (
	FileRecord       = domain.FileRecord
	BrowserNode      = domain.BrowserNode
	DuplicateGroup   = domain.DuplicateGroup
	TimelineBucket   = domain.TimelineBucket
	SimilarityGroup  = domain.SimilarityGroup
	ClipboardItem    = domain.ClipboardItem
	DeletedEntry     = domain.DeletedEntry
	SnapshotInfo     = domain.SnapshotInfo
	FileProperties   = domain.FileProperties
	FolderProperties = domain.FolderProperties
	Category         = domain.Category
	DateMode         = domain.DateMode
)

const (
	ByModifiedDate = domain.ByModifiedDate
	ByIndexedDate  = domain.ByIndexedDate
	FilterAll      = domain.FilterAll
)

// FormatSize renders a byte count
func FormatSize(b uint64) string {
	return domain.FormatSize(b)
}

// FormatTimestamp renders unix seconds
func FormatTimestamp(unix int64) string {
	return domain.FormatTimestamp(unix)
}
