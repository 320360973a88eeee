package commands

import (
	"errors"

	"deliverus/internal/pkg/guard"
)

var ErrRefreshServiceTimesCommandIsNotConstructed = errors.New(
	"RefreshServiceTimesCommand must be created via NewRefreshServiceTimesCommand constructor",
)

// RefreshServiceTimesCommand triggers a recomputation of the average service
// time for every restaurant with delivered orders. Carries no parameters; it
// is issued periodically by the job scheduler as a backstop for the
// on-delivery update.
type RefreshServiceTimesCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshServiceTimesCommand creates a service-time reconciliation command.
func NewRefreshServiceTimesCommand() RefreshServiceTimesCommand {
	return RefreshServiceTimesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshServiceTimesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshServiceTimesCommandIsNotConstructed)
}
