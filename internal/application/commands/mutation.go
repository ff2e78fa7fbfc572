package commands

import (
	"context"
	"errors"

	"smartvault/internal/application"
)

// MutationResult contains the outcome of a state-changing command
type MutationResult struct {
	Action  string
	Target  string
	Message string
	NewPath string // set by moves
}

// runMutation sends one backend command through the vault so it is
// followed by a refetch of scope. When the command succeeds but the
// refetch fails, the result is returned together with the *RefreshError.
func runMutation(
	ctx context.Context,
	vault *application.Vault,
	action, target string,
	scope application.RefreshScope,
	run func(ctx context.Context) (string, error),
) (*MutationResult, error) {
	msg, err := vault.Mutate(ctx, application.Mutation{
		Action: action,
		Target: target,
		Scope:  scope,
		Run:    run,
	})

	var refreshErr *application.RefreshError
	if err != nil && !errors.As(err, &refreshErr) {
		return nil, err
	}

	return &MutationResult{
		Action:  action,
		Target:  target,
		Message: msg,
	}, err
}

// requireConfirmation guards irreversible commands
func requireConfirmation(confirmed bool) error {
	if !confirmed {
		return application.ErrNotConfirmed
	}
	return nil
}
