package application

import (
	"slices"
	"strings"

	"smartvault/internal/domain"
)

// Navigation is the browse position: folder path, search query and
// category filter. It is independent of the record set.
type Navigation struct {
	Path   []string
	Query  string
	Filter string
}

// NewNavigation starts at the root with no filter
func NewNavigation() Navigation {
	return Navigation{Filter: domain.FilterAll}
}

// Enter descends into a folder node's path
func (n Navigation) Enter(folderPath string) Navigation {
	n.Path = domain.FolderSegments(folderPath)
	n.Query = ""
	return n
}

// Up moves to the parent folder
func (n Navigation) Up() Navigation {
	if len(n.Path) > 0 {
		n.Path = slices.Clone(n.Path[:len(n.Path)-1])
	}
	return n
}

// Root clears the path
func (n Navigation) Root() Navigation {
	n.Path = nil
	return n
}

// WithQuery sets the search query
func (n Navigation) WithQuery(q string) Navigation {
	n.Query = q
	return n
}

// WithFilter sets the category filter
func (n Navigation) WithFilter(f string) Navigation {
	if f == "" {
		f = domain.FilterAll
	}
	n.Filter = f
	return n
}

// NextFilter cycles all -> each category -> all
func (n Navigation) NextFilter() Navigation {
	filters := FilterValues()
	idx := slices.Index(filters, n.Filter)
	n.Filter = filters[(idx+1)%len(filters)]
	return n
}

// Searching reports whether the query switches to flat search
func (n Navigation) Searching() bool {
	return n.Query != ""
}

// Breadcrumb renders the current folder
func (n Navigation) Breadcrumb() string {
	return domain.Breadcrumb(n.Path)
}

// FilterValues lists every accepted category filter, starting with "all"
func FilterValues() []string {
	out := []string{domain.FilterAll}
	for _, c := range domain.Categories {
		out = append(out, string(c))
	}
	return out
}

// ParseFilter validates a category filter value
func ParseFilter(f string) (string, error) {
	f = strings.ToLower(strings.TrimSpace(f))
	if f == "" {
		return domain.FilterAll, nil
	}
	if slices.Contains(FilterValues(), f) {
		return f, nil
	}
	return "", &ValidationError{Field: "filter", Message: "unknown category " + f}
}

// Listing projects the state through n
func (n Navigation) Listing(s VaultState) []domain.BrowserNode {
	return domain.Project(domain.FilterByCategory(s.Records, n.Filter), n.Path, n.Query)
}

// Duplicates groups the filtered state by hash
func (n Navigation) Duplicates(s VaultState) []domain.DuplicateGroup {
	return domain.FindDuplicates(domain.FilterByCategory(s.Records, n.Filter))
}
