package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"

	"smartvault/internal/application/commands"
)

var errCancelled = errors.New("operation cancelled")

// confirm asks a y/N question unless --yes was given
func confirm(label string) error {
	if assumeYes {
		return nil
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return errCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// withSpinner runs work while an indeterminate spinner ticks on stderr
func withSpinner[T any](description string, work func() (T, error)) (T, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	out, err := work()
	close(done)
	_ = bar.Finish()
	return out, err
}

// printMutation reports a finished mutation. A refresh failure after a
// successful command is a warning, not a failure.
func printMutation(res *commands.MutationResult, err error) error {
	if res != nil {
		fmt.Println(res.Message)
	}
	if err != nil && res != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	return err
}
