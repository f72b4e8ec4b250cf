package actions

import (
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

type namedSender interface {
	Name() string
}

// WhoAmI reports the sender's name and whether it holds each permission
// passed as an argument.
func WhoAmI(deps Deps) dispatchers.ActionFunc {
	return func(sender dispatchers.Sender, call *dispatchers.CallContext) error {
		name := "unknown"
		if named, ok := sender.(namedSender); ok {
			name = named.Name()
		}
		call.Reply("%s", name)

		for _, perm := range call.Arguments {
			mark := deps.Styler.Error("no")
			if sender.HasPermission(perm) {
				mark = deps.Styler.Success("yes")
			}
			call.Reply("  %s: %s", perm, mark)
		}
		return nil
	}
}
