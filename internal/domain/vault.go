package domain

import (
	"path"
	"strings"
)

// Category classifies a vault file by its media kind
type Category string

const (
	CategoryImage      Category = "image"
	CategoryVideo      Category = "video"
	CategoryDocument   Category = "document"
	CategoryAudio      Category = "audio"
	CategoryArchive    Category = "archive"
	CategoryExecutable Category = "executable"
	CategoryOther      Category = "other"
)

// FilterAll is the category filter value that passes every record
const FilterAll = "all"

// Categories lists every category in display order
var Categories = []Category{
	CategoryImage,
	CategoryVideo,
	CategoryDocument,
	CategoryAudio,
	CategoryArchive,
	CategoryExecutable,
	CategoryOther,
}

var categoryByExt = map[string]Category{
	"jpg": CategoryImage, "jpeg": CategoryImage, "png": CategoryImage, "gif": CategoryImage,
	"webp": CategoryImage, "bmp": CategoryImage, "svg": CategoryImage, "ico": CategoryImage,
	"mp4": CategoryVideo, "mkv": CategoryVideo, "mov": CategoryVideo, "avi": CategoryVideo,
	"wmv": CategoryVideo, "webm": CategoryVideo, "flv": CategoryVideo,
	"pdf": CategoryDocument, "doc": CategoryDocument, "docx": CategoryDocument, "txt": CategoryDocument,
	"xlsx": CategoryDocument, "csv": CategoryDocument, "pptx": CategoryDocument, "md": CategoryDocument,
	"mp3": CategoryAudio, "wav": CategoryAudio, "flac": CategoryAudio, "aac": CategoryAudio,
	"ogg": CategoryAudio, "m4a": CategoryAudio,
	"zip": CategoryArchive, "rar": CategoryArchive, "7z": CategoryArchive, "tar": CategoryArchive,
	"gz": CategoryArchive, "bz2": CategoryArchive,
	"exe": CategoryExecutable, "msi": CategoryExecutable, "dmg": CategoryExecutable, "deb": CategoryExecutable,
}

// ParseCategory returns the category for s and whether it is known
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return CategoryOther, false
}

// CategoryFromPath derives a category from the file extension
func CategoryFromPath(p string) Category {
	name := BaseName(p)
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return CategoryOther
	}
	if c, ok := categoryByExt[strings.ToLower(name[idx+1:])]; ok {
		return c
	}
	return CategoryOther
}

// FileRecord is one indexed file in the vault. Hash identifies content;
// several records may share a hash when the same bytes live at several paths.
type FileRecord struct {
	Path        string
	Size        uint64
	ModifiedRaw string
	Hash        string
	Category    Category
	Name        string
}

// BrowserNode is one row of a hierarchy listing: a file leaf or a folder
// synthesized from the path segments of the records below it.
type BrowserNode struct {
	Key        string
	Name       string
	IsFolder   bool
	Hash       string   // empty when IsFolder
	Path       string   // for a folder, the first record found under it
	Category   Category // for a folder, that record's category
	FolderPath string   // set when IsFolder
}

// ClipboardItem is the single item held between cut and paste
type ClipboardItem struct {
	Hash       string
	Path       string
	Name       string
	IsFolder   bool
	FolderPath string
}

// ClipboardItemFromNode captures a browser node for a later move
func ClipboardItemFromNode(n BrowserNode) ClipboardItem {
	return ClipboardItem{
		Hash:       n.Hash,
		Path:       n.Path,
		Name:       n.Name,
		IsFolder:   n.IsFolder,
		FolderPath: n.FolderPath,
	}
}

// SourcePath is the path handed to a folder move
func (c ClipboardItem) SourcePath() string {
	if c.FolderPath != "" {
		return c.FolderPath
	}
	return c.Path
}

// DeletedEntry is a file that was moved to the bin
type DeletedEntry struct {
	Hash         string   `json:"hash"`
	Path         string   `json:"path"`
	Name         string   `json:"name"`
	Size         uint64   `json:"size"`
	Category     Category `json:"category"`
	DeletedAt    int64    `json:"deleted_at"`
	SnapshotName string   `json:"snapshot_name"`
}

// SnapshotInfo describes one named indexing run
type SnapshotInfo struct {
	Name       string `json:"name"`
	Timestamp  int64  `json:"timestamp"`
	FileCount  int    `json:"file_count"`
	FolderPath string `json:"folder_path"`
}

// FileProperties is the detail record for one file
type FileProperties struct {
	Path         string   `json:"path"`
	Name         string   `json:"name"`
	Size         uint64   `json:"size"`
	Hash         string   `json:"hash"`
	Modified     string   `json:"modified"`
	Category     Category `json:"category"`
	ExistsOnDisk bool     `json:"exists_on_disk"`
}

// IsGhost reports a file known to the index but missing on disk
func (p FileProperties) IsGhost() bool {
	return !p.ExistsOnDisk
}

// FolderProperties is the detail record for one folder
type FolderProperties struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	FileCount    int    `json:"file_count"`
	TotalSize    uint64 `json:"total_size"`
	ExistsOnDisk bool   `json:"exists_on_disk"`
}

// SplitPath splits p on either separator convention and drops empty segments
func SplitPath(p string) []string {
	return strings.FieldsFunc(p, isSeparator)
}

// BaseName returns the final segment of p. A path without a separator,
// or one ending in a separator, is returned unchanged.
func BaseName(p string) string {
	idx := strings.LastIndexFunc(p, isSeparator)
	if idx < 0 || idx == len(p)-1 {
		return p
	}
	return p[idx+1:]
}

// Stem returns the base name of p without its extension
func Stem(p string) string {
	name := BaseName(p)
	return strings.TrimSuffix(name, path.Ext(name))
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
