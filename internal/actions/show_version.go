package actions

import "github.com/footprint-tools/cmdtree/internal/dispatchers"

func ShowVersion(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return showVersion(call, deps)
	}
}

func showVersion(call *dispatchers.CallContext, deps actionDependencies) error {
	call.Reply("cmdtree version %v", deps.Version())
	return nil
}
