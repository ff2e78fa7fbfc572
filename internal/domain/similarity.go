package domain

import "fmt"

// Similarity threshold bounds, in percent
const (
	MinThreshold     = 70
	MaxThreshold     = 99
	DefaultThreshold = 90
)

// SimilarityTriple is one near-duplicate relation as computed by the backend
type SimilarityTriple struct {
	RepresentativeHash string
	MemberHashes       []string
	SimilarityPct      float64
}

// SimilarityGroup is a SimilarityTriple resolved against local image records
type SimilarityGroup struct {
	Representative FileRecord
	Members        []FileRecord
	SimilarityPct  float64
}

// ThresholdOutOfRangeError reports a threshold outside [MinThreshold, MaxThreshold]
type ThresholdOutOfRangeError struct {
	Threshold int
}

func (e *ThresholdOutOfRangeError) Error() string {
	return fmt.Sprintf("similarity threshold %d outside %d-%d", e.Threshold, MinThreshold, MaxThreshold)
}

// MaxDistance converts a similarity threshold to the backend's distance
// parameter, where smaller means more similar.
func MaxDistance(threshold int) (int, error) {
	if threshold < MinThreshold || threshold > MaxThreshold {
		return 0, &ThresholdOutOfRangeError{Threshold: threshold}
	}
	return 100 - threshold, nil
}

// ClampThreshold pins t into the accepted range
func ClampThreshold(t int) int {
	return max(MinThreshold, min(MaxThreshold, t))
}

// ThresholdTier describes how aggressive a threshold is
func ThresholdTier(t int) string {
	switch {
	case t >= 95:
		return "Very strict: nearly pixel-perfect"
	case t >= 85:
		return "Balanced: catches most near-dupes"
	default:
		return "Loose: may include different images"
	}
}

// ResolveSimilarity maps backend triples onto image records. Members never
// repeat and never include the representative. A triple whose representative
// is unknown, or that has no known member left, is dropped. Backend order is
// kept.
func ResolveSimilarity(triples []SimilarityTriple, records []FileRecord) []SimilarityGroup {
	images := make(map[string]FileRecord)
	for _, r := range records {
		if r.Category != CategoryImage {
			continue
		}
		if _, ok := images[r.Hash]; !ok {
			images[r.Hash] = r
		}
	}

	var groups []SimilarityGroup
	for _, t := range triples {
		rep, ok := images[t.RepresentativeHash]
		if !ok {
			continue
		}

		var members []FileRecord
		seen := map[string]struct{}{t.RepresentativeHash: {}}
		for _, h := range t.MemberHashes {
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			if m, ok := images[h]; ok {
				members = append(members, m)
			}
		}
		if len(members) == 0 {
			continue
		}

		groups = append(groups, SimilarityGroup{
			Representative: rep,
			Members:        members,
			SimilarityPct:  t.SimilarityPct,
		})
	}
	return groups
}
