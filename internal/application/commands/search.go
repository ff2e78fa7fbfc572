package commands

import (
	"context"
	"strings"

	"smartvault/internal/application"
)

// SearchCommand finds files by name anywhere in the vault
type SearchCommand struct {
	vault  *application.Vault
	Query  string
	Filter string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(vault *application.Vault, query, filter string) *SearchCommand {
	return &SearchCommand{vault: vault, Query: query, Filter: filter}
}

// Validate checks if the search query is valid
func (c *SearchCommand) Validate() error {
	if strings.TrimSpace(c.Query) == "" {
		return &application.ValidationError{
			Field:   "query",
			Message: "search query is required",
		}
	}
	return nil
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) ([]application.BrowserNode, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	filter, err := application.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	nav := application.NewNavigation().WithFilter(filter).WithQuery(c.Query)
	return nav.Listing(c.vault.State()), nil
}
