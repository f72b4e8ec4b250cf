package config

import (
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Unset(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return unset(call, deps)
	}
}

func unset(call *dispatchers.CallContext, deps Deps) error {
	key, _ := call.Argument(0)

	if err := deps.Unset(key); err != nil {
		return err
	}

	value, _ := deps.Get(key)
	call.Reply("unset %s %s", key, deps.Styler.Muted("(now "+value+")"))
	return nil
}
