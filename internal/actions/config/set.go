package config

import (
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Set(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return set(call, deps)
	}
}

func set(call *dispatchers.CallContext, deps Deps) error {
	key, _ := call.Argument(0)
	value, _ := call.Argument(1)

	if err := deps.Set(key, value); err != nil {
		return err
	}

	call.Reply("%s %s=%s", deps.Styler.Success("set"), key, value)
	return nil
}
