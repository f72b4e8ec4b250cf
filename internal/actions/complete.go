package actions

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Complete lists what can follow the given words. A trailing space on the
// line completes the next word from scratch.
func Complete(deps Deps) dispatchers.ActionFunc {
	return func(sender dispatchers.Sender, call *dispatchers.CallContext) error {
		candidates := completions.Complete(deps.Commands(), sender, call.Arguments)
		if len(candidates) == 0 {
			call.Reply("%s", deps.Styler.Muted("no completions"))
			return nil
		}
		call.Reply("%s", strings.Join(candidates, " "))
		return nil
	}
}
