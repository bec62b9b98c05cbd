package query

import (
	"context"
	"fmt"

	"github.com/renato0307/kswitch/internal/logging"
)

// Switcher changes the active context
type Switcher interface {
	SwitchTo(ctx context.Context, name string) error
}

// Dispatcher performs the action attached to a selected item
type Dispatcher struct {
	switcher Switcher
}

// NewDispatcher creates a dispatcher
func NewDispatcher(switcher Switcher) *Dispatcher {
	return &Dispatcher{switcher: switcher}
}

// Dispatch runs the item's action and returns a confirmation message.
// Items without an action return an empty message and no error. Switch
// errors are returned to the caller to show to the user.
func (d *Dispatcher) Dispatch(ctx context.Context, item Item) (string, error) {
	switch item.Action.Kind {
	case ActionSwitch:
		name := item.Action.Context
		logger := logging.Get().With("context", name)
		if err := d.switcher.SwitchTo(ctx, name); err != nil {
			logger.Error("switch failed", "error", err)
			return "", err
		}
		logger.Info("switched context")
		return fmt.Sprintf("Switched to context: %s", name), nil
	default:
		return "", nil
	}
}
