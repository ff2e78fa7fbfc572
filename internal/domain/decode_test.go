package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawRecord
		ok       bool
		wantName string
		wantCat  Category
		wantSize uint64
	}{
		{
			name:     "forward slashes",
			raw:      RawRecord{Hash: "h1", Payload: `{"path":"a/b/c.jpg","size":42,"modified":"2025-06-14 10:00","category":"image"}`},
			ok:       true,
			wantName: "c.jpg",
			wantCat:  CategoryImage,
			wantSize: 42,
		},
		{
			name:     "backslashes",
			raw:      RawRecord{Hash: "h2", Payload: `{"path":"C:\\docs\\report.pdf","size":"10","category":"document"}`},
			ok:       true,
			wantName: "report.pdf",
			wantCat:  CategoryDocument,
			wantSize: 10,
		},
		{
			name:     "no separator keeps path",
			raw:      RawRecord{Hash: "h3", Payload: `{"path":"song.mp3","category":"audio"}`},
			ok:       true,
			wantName: "song.mp3",
			wantCat:  CategoryAudio,
		},
		{
			name:     "unknown category falls back to extension",
			raw:      RawRecord{Hash: "h4", Payload: `{"path":"x/clip.MKV","category":"weird"}`},
			ok:       true,
			wantName: "clip.MKV",
			wantCat:  CategoryVideo,
		},
		{
			name:     "missing category falls back to extension",
			raw:      RawRecord{Hash: "h5", Payload: `{"path":"x/setup.exe"}`},
			ok:       true,
			wantName: "setup.exe",
			wantCat:  CategoryExecutable,
		},
		{
			name:     "exponent size",
			raw:      RawRecord{Hash: "h6", Payload: `{"path":"big.zip","size":1e3}`},
			ok:       true,
			wantName: "big.zip",
			wantCat:  CategoryArchive,
			wantSize: 1000,
		},
		{
			name:     "largest size",
			raw:      RawRecord{Hash: "h7", Payload: `{"path":"big.zip","size":18446744073709551615}`},
			ok:       true,
			wantName: "big.zip",
			wantCat:  CategoryArchive,
			wantSize: 18446744073709551615,
		},
		{name: "size beyond uint64", raw: RawRecord{Hash: "bad", Payload: `{"path":"a.txt","size":1e30}`}},
		{name: "fractional size", raw: RawRecord{Hash: "bad", Payload: `{"path":"a.txt","size":1.5}`}},
		{name: "not json", raw: RawRecord{Hash: "bad", Payload: `{path:`}},
		{name: "json array", raw: RawRecord{Hash: "bad", Payload: `[1,2]`}},
		{name: "json null", raw: RawRecord{Hash: "bad", Payload: `null`}},
		{name: "empty path", raw: RawRecord{Hash: "bad", Payload: `{"path":""}`}},
		{name: "negative size", raw: RawRecord{Hash: "bad", Payload: `{"path":"a.txt","size":-1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DecodeRecord(tt.raw)
			require.Equal(t, tt.ok, res.Decoded())
			if !tt.ok {
				assert.True(t, res.Malformed())
				assert.Error(t, res.Err)
				return
			}
			assert.Equal(t, tt.raw.Hash, res.Record.Hash)
			assert.Equal(t, tt.wantName, res.Record.Name)
			assert.Equal(t, tt.wantCat, res.Record.Category)
			assert.Equal(t, tt.wantSize, res.Record.Size)
		})
	}
}

func TestDecodeRecords(t *testing.T) {
	t.Run("skips malformed payloads without aborting", func(t *testing.T) {
		raws := []RawRecord{
			{Hash: "h1", Payload: `{"path":"a/one.txt"}`},
			{Hash: "h2", Payload: `garbage`},
			{Hash: "h3", Payload: `{"path":"a/three.txt"}`},
		}

		records, dropped := DecodeRecords(raws)

		require.Len(t, records, 2)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, "one.txt", records[0].Name)
		assert.Equal(t, "three.txt", records[1].Name)
	})

	t.Run("output never exceeds input", func(t *testing.T) {
		raws := []RawRecord{
			{Hash: "a", Payload: `{}`},
			{Hash: "b", Payload: ``},
			{Hash: "c", Payload: `{"path":"ok.png"}`},
		}
		records, dropped := DecodeRecords(raws)
		assert.LessOrEqual(t, len(records), len(raws))
		assert.Equal(t, len(raws), len(records)+dropped)
	})

	t.Run("later pair wins on duplicate path", func(t *testing.T) {
		raws := []RawRecord{
			{Hash: "old", Payload: `{"path":"p/file.txt","size":1}`},
			{Hash: "other", Payload: `{"path":"p/else.txt"}`},
			{Hash: "new", Payload: `{"path":"p/file.txt","size":2}`},
		}

		records, _ := DecodeRecords(raws)

		require.Len(t, records, 2)
		assert.Equal(t, "new", records[0].Hash)
		assert.Equal(t, uint64(2), records[0].Size)
		assert.Equal(t, "other", records[1].Hash)
	})

	t.Run("empty input", func(t *testing.T) {
		records, dropped := DecodeRecords(nil)
		assert.Empty(t, records)
		assert.Zero(t, dropped)
	})
}

func TestFilterByCategory(t *testing.T) {
	records := []FileRecord{
		{Path: "a.jpg", Category: CategoryImage},
		{Path: "b.mp4", Category: CategoryVideo},
		{Path: "c.png", Category: CategoryImage},
	}

	assert.Len(t, FilterByCategory(records, FilterAll), 3)
	assert.Len(t, FilterByCategory(records, ""), 3)
	assert.Len(t, FilterByCategory(records, "image"), 2)
	assert.Empty(t, FilterByCategory(records, "audio"))
	assert.Len(t, OnlyCategory(records, CategoryVideo), 1)
}
