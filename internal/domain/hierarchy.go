package domain

import (
	"slices"
	"strings"
)

const folderKeyPrefix = "dir-"

// Project derives the listing shown for currentPath. A non-empty query
// switches to a flat search over names and ignores currentPath. The query is
// matched as typed, surrounding spaces included.
func Project(records []FileRecord, currentPath []string, query string) []BrowserNode {
	if query != "" {
		return search(records, query)
	}
	return browse(records, currentPath)
}

func search(records []FileRecord, query string) []BrowserNode {
	q := strings.ToLower(query)
	seen := make(map[string]struct{})
	var nodes []BrowserNode

	for _, r := range records {
		if !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		if _, dup := seen[r.Hash]; dup {
			continue
		}
		seen[r.Hash] = struct{}{}
		nodes = append(nodes, leafNode(r))
	}
	return nodes
}

func browse(records []FileRecord, currentPath []string) []BrowserNode {
	depth := len(currentPath)
	seen := make(map[string]struct{})
	var nodes []BrowserNode

	for _, r := range records {
		parts := SplitPath(r.Path)
		if len(parts) <= depth || !slices.Equal(parts[:depth], currentPath) {
			continue
		}

		var node BrowserNode
		if len(parts) == depth+1 {
			node = leafNode(r)
		} else {
			name := parts[depth]
			// Path and Category come from the first record under the folder
			node = BrowserNode{
				Key:        folderKeyPrefix + name,
				Name:       name,
				IsFolder:   true,
				FolderPath: strings.Join(parts[:depth+1], "/"),
				Path:       r.Path,
				Category:   r.Category,
			}
		}

		if _, dup := seen[node.Key]; dup {
			continue
		}
		seen[node.Key] = struct{}{}
		nodes = append(nodes, node)
	}

	slices.SortStableFunc(nodes, func(a, b BrowserNode) int {
		return folderRank(a) - folderRank(b)
	})
	return nodes
}

// leafNode keys a file by hash and path so identical content stored at two
// paths of the same folder still yields two rows.
func leafNode(r FileRecord) BrowserNode {
	return BrowserNode{
		Key:      r.Hash + ":" + r.Path,
		Name:     r.Name,
		Hash:     r.Hash,
		Path:     r.Path,
		Category: r.Category,
	}
}

func folderRank(n BrowserNode) int {
	if n.IsFolder {
		return 0
	}
	return 1
}

// Breadcrumb renders currentPath for display
func Breadcrumb(currentPath []string) string {
	if len(currentPath) == 0 {
		return "/"
	}
	return "/" + strings.Join(currentPath, "/")
}

// FolderSegments splits a node folder path back into navigation segments
func FolderSegments(folderPath string) []string {
	return SplitPath(folderPath)
}
