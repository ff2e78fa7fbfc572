package commands

import (
	"context"
	"fmt"

	"smartvault/internal/application"
	"smartvault/internal/domain"
)

// FindSimilarResult is one complete near-duplicate scan. A new scan
// replaces it entirely.
type FindSimilarResult struct {
	Threshold   int
	MaxDistance int
	Groups      []application.SimilarityGroup
	Unresolved  int
}

// FindSimilarCommand asks the backend for near-duplicate images and
// resolves the relation against the cached image records.
type FindSimilarCommand struct {
	vault     *application.Vault
	Threshold int
}

// NewFindSimilarCommand creates a new FindSimilarCommand
func NewFindSimilarCommand(vault *application.Vault, threshold int) *FindSimilarCommand {
	return &FindSimilarCommand{vault: vault, Threshold: threshold}
}

// Validate checks if the threshold is in range
func (c *FindSimilarCommand) Validate() error {
	return application.ValidateThreshold(c.Threshold)
}

// Execute runs the find similar command
func (c *FindSimilarCommand) Execute(ctx context.Context) (*FindSimilarResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dist, _ := domain.MaxDistance(c.Threshold)
	triples, err := c.vault.Backend().FindSimilarImages(ctx, dist)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar images: %w", err)
	}

	images := domain.OnlyCategory(c.vault.Records(), domain.CategoryImage)
	groups := domain.ResolveSimilarity(triples, images)

	return &FindSimilarResult{
		Threshold:   c.Threshold,
		MaxDistance: dist,
		Groups:      groups,
		Unresolved:  len(triples) - len(groups),
	}, nil
}

// IntegrityResult lists files whose content no longer matches their hash
type IntegrityResult struct {
	Corrupted []string
	Message   string
}

// IntegrityCheckCommand asks the backend to re-verify stored hashes
type IntegrityCheckCommand struct {
	vault *application.Vault
}

// NewIntegrityCheckCommand creates a new IntegrityCheckCommand
func NewIntegrityCheckCommand(vault *application.Vault) *IntegrityCheckCommand {
	return &IntegrityCheckCommand{vault: vault}
}

// Execute runs the integrity check command
func (c *IntegrityCheckCommand) Execute(ctx context.Context) (*IntegrityResult, error) {
	corrupted, err := c.vault.Backend().IntegrityCheck(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run integrity check: %w", err)
	}
	msg := "All files intact"
	if len(corrupted) > 0 {
		msg = fmt.Sprintf("%d files changed since indexing", len(corrupted))
	}
	return &IntegrityResult{Corrupted: corrupted, Message: msg}, nil
}
