package history

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Clear(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		removed, err := deps.History.Clear()
		if err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		call.Reply("%s %d entries", deps.Styler.Success("removed"), removed)
		return nil
	}
}
