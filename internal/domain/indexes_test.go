package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates(t *testing.T) {
	t.Run("same hash different paths forms one group", func(t *testing.T) {
		records := []FileRecord{rec("h1", "a/b/c.jpg"), rec("h1", "a/b/c2.jpg")}

		groups := FindDuplicates(records)

		require.Len(t, groups, 1)
		assert.Equal(t, "h1", groups[0].Hash)
		assert.Len(t, groups[0].Records, 2)
	})

	t.Run("group size equals hash multiplicity", func(t *testing.T) {
		records := []FileRecord{
			rec("b", "1"), rec("a", "2"), rec("b", "3"),
			rec("c", "4"), rec("a", "5"), rec("b", "6"),
		}

		groups := FindDuplicates(records)

		require.Len(t, groups, 2)
		assert.Equal(t, "b", groups[0].Hash)
		assert.Len(t, groups[0].Records, 3)
		assert.Equal(t, "a", groups[1].Hash)
		assert.Len(t, groups[1].Records, 2)
		for _, g := range groups {
			assert.NotEqual(t, "c", g.Hash)
		}
	})

	t.Run("no duplicates", func(t *testing.T) {
		assert.Empty(t, FindDuplicates([]FileRecord{rec("a", "1"), rec("b", "2")}))
	})

	t.Run("wasted bytes", func(t *testing.T) {
		g := DuplicateGroup{Records: []FileRecord{{Size: 100}, {Size: 100}, {Size: 100}}}
		assert.Equal(t, uint64(200), g.WastedBytes())
	})
}

func TestBuildTimeline(t *testing.T) {
	records := []FileRecord{
		{Path: "a", ModifiedRaw: "2024-01-02 08:00:00"},
		{Path: "b", ModifiedRaw: "modified 2025-06-14T10:00"},
		{Path: "c", ModifiedRaw: "yesterday"},
		{Path: "d", ModifiedRaw: "2024-01-02 09:30:00"},
		{Path: "e"},
	}

	t.Run("by modified date", func(t *testing.T) {
		buckets := BuildTimeline(records, ByModifiedDate)

		require.Len(t, buckets, 3)
		assert.Equal(t, UnknownDate, buckets[0].DateKey)
		assert.Equal(t, UnknownDate, buckets[0].DisplayLabel)
		assert.Len(t, buckets[0].Files, 2)

		assert.Equal(t, "2025-06-14", buckets[1].DateKey)
		assert.Equal(t, "14 June 2025", buckets[1].DisplayLabel)

		assert.Equal(t, "2024-01-02", buckets[2].DateKey)
		assert.Equal(t, "2 January 2024", buckets[2].DisplayLabel)
		assert.Len(t, buckets[2].Files, 2)
	})

	t.Run("by indexed date is all unknown", func(t *testing.T) {
		buckets := BuildTimeline(records, ByIndexedDate)

		require.Len(t, buckets, 1)
		assert.Equal(t, UnknownDate, buckets[0].DateKey)
		assert.Len(t, buckets[0].Files, len(records))
	})

	t.Run("buckets partition the input", func(t *testing.T) {
		seen := make(map[string]int)
		for _, b := range BuildTimeline(records, ByModifiedDate) {
			for _, f := range b.Files {
				seen[f.Path]++
			}
		}
		require.Len(t, seen, len(records))
		for p, n := range seen {
			assert.Equal(t, 1, n, p)
		}
	})

	t.Run("summary", func(t *testing.T) {
		s := Summarize(BuildTimeline(records, ByModifiedDate))
		assert.Equal(t, TimelineSummary{Files: 5, Dates: 3}, s)
	})

	t.Run("mode toggle", func(t *testing.T) {
		assert.Equal(t, ByIndexedDate, ByModifiedDate.Toggle())
		assert.Equal(t, ByModifiedDate, ByIndexedDate.Toggle())
		assert.Equal(t, "modified", ByModifiedDate.String())
	})
}

func TestMaxDistance(t *testing.T) {
	tests := []struct {
		threshold int
		want      int
		wantErr   bool
	}{
		{threshold: 90, want: 10},
		{threshold: 70, want: 30},
		{threshold: 99, want: 1},
		{threshold: 95, want: 5},
		{threshold: 69, wantErr: true},
		{threshold: 100, wantErr: true},
	}

	for _, tt := range tests {
		got, err := MaxDistance(tt.threshold)
		if tt.wantErr {
			var rangeErr *ThresholdOutOfRangeError
			assert.ErrorAs(t, err, &rangeErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	t.Run("strictly decreasing over the range", func(t *testing.T) {
		prev, _ := MaxDistance(MinThreshold)
		for th := MinThreshold + 1; th <= MaxThreshold; th++ {
			d, err := MaxDistance(th)
			require.NoError(t, err)
			assert.Equal(t, prev-1, d)
			prev = d
		}
	})
}

func TestThresholdHelpers(t *testing.T) {
	assert.Equal(t, 70, ClampThreshold(10))
	assert.Equal(t, 99, ClampThreshold(150))
	assert.Equal(t, 88, ClampThreshold(88))

	assert.Contains(t, ThresholdTier(97), "strict")
	assert.Contains(t, ThresholdTier(90), "Balanced")
	assert.Contains(t, ThresholdTier(72), "Loose")
}

func TestResolveSimilarity(t *testing.T) {
	records := []FileRecord{
		{Hash: "a", Path: "a.jpg", Category: CategoryImage},
		{Hash: "b", Path: "b.jpg", Category: CategoryImage},
		{Hash: "c", Path: "c.png", Category: CategoryImage},
		{Hash: "v", Path: "v.mp4", Category: CategoryVideo},
	}

	t.Run("unknown representative drops the triple", func(t *testing.T) {
		triples := []SimilarityTriple{
			{RepresentativeHash: "a", MemberHashes: []string{"b"}, SimilarityPct: 97},
			{RepresentativeHash: "missing", MemberHashes: []string{"c"}, SimilarityPct: 96},
		}

		groups := ResolveSimilarity(triples, records)

		require.Len(t, groups, 1)
		assert.Equal(t, "a", groups[0].Representative.Hash)
	})

	t.Run("unresolved members are dropped", func(t *testing.T) {
		triples := []SimilarityTriple{
			{RepresentativeHash: "a", MemberHashes: []string{"zzz", "c"}},
			{RepresentativeHash: "b", MemberHashes: []string{"zzz"}},
			{RepresentativeHash: "c", MemberHashes: []string{"v"}},
		}

		groups := ResolveSimilarity(triples, records)

		require.Len(t, groups, 1)
		require.Len(t, groups[0].Members, 1)
		assert.Equal(t, "c", groups[0].Members[0].Hash)
	})

	t.Run("representative and repeats are not members", func(t *testing.T) {
		triples := []SimilarityTriple{
			{RepresentativeHash: "a", MemberHashes: []string{"a", "b", "b", "c"}, SimilarityPct: 96},
			{RepresentativeHash: "c", MemberHashes: []string{"c", "c"}, SimilarityPct: 95},
		}

		groups := ResolveSimilarity(triples, records)

		require.Len(t, groups, 1)
		assert.Equal(t, "a", groups[0].Representative.Hash)
		require.Len(t, groups[0].Members, 2)
		assert.Equal(t, "b", groups[0].Members[0].Hash)
		assert.Equal(t, "c", groups[0].Members[1].Hash)
	})

	t.Run("keeps backend order", func(t *testing.T) {
		triples := []SimilarityTriple{
			{RepresentativeHash: "c", MemberHashes: []string{"a"}, SimilarityPct: 80},
			{RepresentativeHash: "a", MemberHashes: []string{"b"}, SimilarityPct: 99},
		}

		groups := ResolveSimilarity(triples, records)

		require.Len(t, groups, 2)
		assert.Equal(t, "c", groups[0].Representative.Hash)
		assert.Equal(t, 80.0, groups[0].SimilarityPct)
		assert.Equal(t, "a", groups[1].Representative.Hash)
	})
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "1.50 MB", FormatSize(1572864))
	assert.Equal(t, "2.00 GB", FormatSize(2*1024*1024*1024))

	assert.Equal(t, "14-06-2025", DefaultSnapshotName(time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)))

	assert.Equal(t, "photo", DefaultArchiveName([]string{"a/b/photo.jpg"}))
	assert.Equal(t, "backup.tar", DefaultArchiveName([]string{`C:\x\backup.tar.gz`}))
	assert.Equal(t, "archive", DefaultArchiveName([]string{"a.txt", "b.txt"}))
	assert.Equal(t, "archive", DefaultArchiveName([]string{".bashrc"}))
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "c.txt", BaseName("a/b/c.txt"))
	assert.Equal(t, "c.txt", BaseName(`a\b\c.txt`))
	assert.Equal(t, "plain", BaseName("plain"))
	assert.Equal(t, "a/b/", BaseName("a/b/"))
	assert.Equal(t, []string{"a", "b"}, SplitPath("//a\\\\b/"))

	c, ok := ParseCategory("Image")
	assert.True(t, ok)
	assert.Equal(t, CategoryImage, c)
	_, ok = ParseCategory("nope")
	assert.False(t, ok)
	assert.Equal(t, CategoryOther, CategoryFromPath("noext"))
	assert.Equal(t, CategoryArchive, CategoryFromPath("x.7z"))
}

func TestClipboardItemFromNode(t *testing.T) {
	folder := ClipboardItemFromNode(BrowserNode{Name: "photos", IsFolder: true, FolderPath: "root/photos"})
	assert.True(t, folder.IsFolder)
	assert.Equal(t, "root/photos", folder.SourcePath())

	file := ClipboardItemFromNode(BrowserNode{Name: "a.jpg", Hash: "h", Path: "root/a.jpg"})
	assert.False(t, file.IsFolder)
	assert.Equal(t, "root/a.jpg", file.SourcePath())
}
