package actions

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// EchoMaxWords bounds how many words echo repeats.
const EchoMaxWords = 16

func Echo(_ dispatchers.Sender, call *dispatchers.CallContext) error {
	call.Reply("%s", strings.Join(call.Arguments, " "))
	return nil
}

// Notify replies after the dispatch that queued it has finished.
func Notify(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		call.Reply("%s %s", deps.Styler.Info("notice:"), strings.Join(call.Arguments, " "))
		return nil
	}
}
