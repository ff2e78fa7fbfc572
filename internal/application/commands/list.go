package commands

import (
	"context"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// BrowseResult is one folder listing
type BrowseResult struct {
	Breadcrumb string
	Nodes      []application.BrowserNode
}

// BrowseCommand lists the folder selected by a Navigation
type BrowseCommand struct {
	vault *application.Vault
	Nav   application.Navigation
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(vault *application.Vault, nav application.Navigation) *BrowseCommand {
	return &BrowseCommand{vault: vault, Nav: nav}
}

// Execute runs the browse command
func (c *BrowseCommand) Execute(ctx context.Context) (*BrowseResult, error) {
	if _, err := application.ParseFilter(c.Nav.Filter); err != nil {
		return nil, err
	}
	return &BrowseResult{
		Breadcrumb: c.Nav.Breadcrumb(),
		Nodes:      c.Nav.Listing(c.vault.State()),
	}, nil
}

// DuplicatesCommand lists exact duplicate groups under a category filter
type DuplicatesCommand struct {
	vault  *application.Vault
	Filter string
}

// NewDuplicatesCommand creates a new DuplicatesCommand
func NewDuplicatesCommand(vault *application.Vault, filter string) *DuplicatesCommand {
	return &DuplicatesCommand{vault: vault, Filter: filter}
}

// Execute runs the duplicates command
func (c *DuplicatesCommand) Execute(ctx context.Context) ([]application.DuplicateGroup, error) {
	filter, err := application.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	return domain.FindDuplicates(domain.FilterByCategory(c.vault.Records(), filter)), nil
}

// TimelineResult is a bucketed timeline with its counts
type TimelineResult struct {
	Mode    application.DateMode
	Buckets []application.TimelineBucket
	Summary domain.TimelineSummary
}

// TimelineCommand buckets records by date
type TimelineCommand struct {
	vault  *application.Vault
	Mode   application.DateMode
	Filter string
}

// NewTimelineCommand creates a new TimelineCommand
func NewTimelineCommand(vault *application.Vault, mode application.DateMode, filter string) *TimelineCommand {
	return &TimelineCommand{vault: vault, Mode: mode, Filter: filter}
}

// Execute runs the timeline command
func (c *TimelineCommand) Execute(ctx context.Context) (*TimelineResult, error) {
	filter, err := application.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	buckets := domain.BuildTimeline(domain.FilterByCategory(c.vault.Records(), filter), c.Mode)
	return &TimelineResult{
		Mode:    c.Mode,
		Buckets: buckets,
		Summary: domain.Summarize(buckets),
	}, nil
}
