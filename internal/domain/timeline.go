package domain

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

// DateMode selects which date a timeline buckets by
type DateMode int

const (
	ByModifiedDate DateMode = iota
	ByIndexedDate
)

func (m DateMode) String() string {
	if m == ByIndexedDate {
		return "indexed"
	}
	return "modified"
}

// Toggle flips between the two modes
func (m DateMode) Toggle() DateMode {
	if m == ByIndexedDate {
		return ByModifiedDate
	}
	return ByIndexedDate
}

// UnknownDate is the bucket key for records without a usable date
const UnknownDate = "Unknown Date"

var dateKeyPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// TimelineBucket groups records sharing one date key
type TimelineBucket struct {
	DateKey      string
	DisplayLabel string
	Files        []FileRecord
}

// DateKey extracts the bucket key for r under mode
func DateKey(r FileRecord, mode DateMode) string {
	if mode != ByModifiedDate {
		return UnknownDate
	}
	if m := dateKeyPattern.FindString(r.ModifiedRaw); m != "" {
		return m
	}
	return UnknownDate
}

// BuildTimeline partitions records into date buckets sorted by key,
// descending by plain string comparison. The UnknownDate bucket lands
// wherever that comparison puts it, which is ahead of numeric keys.
func BuildTimeline(records []FileRecord, mode DateMode) []TimelineBucket {
	byKey := make(map[string][]FileRecord)
	for _, r := range records {
		k := DateKey(r, mode)
		byKey[k] = append(byKey[k], r)
	}

	buckets := make([]TimelineBucket, 0, len(byKey))
	for k, files := range byKey {
		buckets = append(buckets, TimelineBucket{
			DateKey:      k,
			DisplayLabel: DisplayDate(k),
			Files:        files,
		})
	}

	slices.SortFunc(buckets, func(a, b TimelineBucket) int {
		return strings.Compare(b.DateKey, a.DateKey)
	})
	return buckets
}

// DisplayDate renders a date key as a long day-month-year date
func DisplayDate(key string) string {
	if key == UnknownDate {
		return UnknownDate
	}
	t, err := time.Parse(time.DateOnly, key)
	if err != nil {
		return key
	}
	return t.Format("2 January 2006")
}

// TimelineSummary counts what a timeline shows
type TimelineSummary struct {
	Files int
	Dates int
}

// Summarize counts files and buckets
func Summarize(buckets []TimelineBucket) TimelineSummary {
	s := TimelineSummary{Dates: len(buckets)}
	for _, b := range buckets {
		s.Files += len(b.Files)
	}
	return s
}
