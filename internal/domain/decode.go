package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one (hash, payload) pair as listed by the backend
type RawRecord struct {
	Hash    string
	Payload string
}

// DecodeResult is the tagged outcome of decoding one RawRecord.
// Exactly one of Record or Err is meaningful, selected by OK.
type DecodeResult struct {
	OK     bool
	Record FileRecord
	Err    error
}

// Decoded reports whether the payload produced a record
func (r DecodeResult) Decoded() bool { return r.OK }

// Malformed reports whether the payload was dropped
func (r DecodeResult) Malformed() bool { return !r.OK }

var errMissingPath = errors.New("payload has no path")

type recordPayload struct {
	Path     string          `json:"path"`
	Size     json.RawMessage `json:"size"`
	Modified string          `json:"modified"`
	Category string          `json:"category"`
}

// DecodeRecord decodes a single payload. It never panics; any failure is
// reported through the Malformed branch.
func DecodeRecord(raw RawRecord) DecodeResult {
	var p recordPayload
	if err := json.Unmarshal([]byte(raw.Payload), &p); err != nil {
		return DecodeResult{Err: fmt.Errorf("decode %s: %w", raw.Hash, err)}
	}
	if p.Path == "" {
		return DecodeResult{Err: fmt.Errorf("decode %s: %w", raw.Hash, errMissingPath)}
	}

	size, err := parseSize(p.Size)
	if err != nil {
		return DecodeResult{Err: fmt.Errorf("decode %s: %w", raw.Hash, err)}
	}

	category, ok := ParseCategory(p.Category)
	if !ok {
		category = CategoryFromPath(p.Path)
	}

	return DecodeResult{
		OK: true,
		Record: FileRecord{
			Path:        p.Path,
			Size:        size,
			ModifiedRaw: p.Modified,
			Hash:        raw.Hash,
			Category:    category,
			Name:        BaseName(p.Path),
		},
	}
}

// parseSize accepts a JSON number or a numeric string; absent means zero.
// Exponent or decimal forms must still denote an integer that fits uint64.
func parseSize(raw json.RawMessage) (uint64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, nil
	}
	s = strings.Trim(s, `"`)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	// 2^64 itself is the first float64 above the range
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && f >= 0 && f < math.MaxUint64 && f == math.Trunc(f) {
		return uint64(f), nil
	}
	return 0, fmt.Errorf("invalid size %q", s)
}

// DecodeRecords decodes every pair, silently skipping malformed payloads.
// When two pairs carry the same path the later one wins and takes the
// position of the first. The second return value counts dropped pairs.
func DecodeRecords(raws []RawRecord) ([]FileRecord, int) {
	records := make([]FileRecord, 0, len(raws))
	byPath := make(map[string]int, len(raws))
	dropped := 0

	for _, raw := range raws {
		res := DecodeRecord(raw)
		if res.Malformed() {
			dropped++
			continue
		}
		if idx, seen := byPath[res.Record.Path]; seen {
			records[idx] = res.Record
			continue
		}
		byPath[res.Record.Path] = len(records)
		records = append(records, res.Record)
	}
	return records, dropped
}

// FilterByCategory keeps records matching filter; FilterAll keeps everything
func FilterByCategory(records []FileRecord, filter string) []FileRecord {
	if filter == "" || filter == FilterAll {
		return records
	}
	out := make([]FileRecord, 0, len(records))
	for _, r := range records {
		if string(r.Category) == filter {
			out = append(out, r)
		}
	}
	return out
}

// OnlyCategory keeps records of exactly one category
func OnlyCategory(records []FileRecord, c Category) []FileRecord {
	return FilterByCategory(records, string(c))
}
