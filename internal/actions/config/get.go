package config

import (
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func Get(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return get(call, deps)
	}
}

func get(call *dispatchers.CallContext, deps Deps) error {
	key, _ := call.Argument(0)
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	call.Reply("%s", value)
	return nil
}
