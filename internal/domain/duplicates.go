package domain

// DuplicateGroup holds records that share one content hash
type DuplicateGroup struct {
	Hash    string
	Records []FileRecord
}

// WastedBytes is the space reclaimable by keeping a single copy
func (g DuplicateGroup) WastedBytes() uint64 {
	if len(g.Records) < 2 {
		return 0
	}
	return g.Records[0].Size * uint64(len(g.Records)-1)
}

// FindDuplicates groups records by hash and keeps groups of two or more.
// Groups follow the first appearance of their hash; members keep input order.
func FindDuplicates(records []FileRecord) []DuplicateGroup {
	byHash := make(map[string][]FileRecord)
	var order []string

	for _, r := range records {
		if _, ok := byHash[r.Hash]; !ok {
			order = append(order, r.Hash)
		}
		byHash[r.Hash] = append(byHash[r.Hash], r)
	}

	var groups []DuplicateGroup
	for _, h := range order {
		if members := byHash[h]; len(members) > 1 {
			groups = append(groups, DuplicateGroup{Hash: h, Records: members})
		}
	}
	return groups
}
