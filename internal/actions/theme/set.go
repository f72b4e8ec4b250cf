package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func Set(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return setTheme(call, deps)
	}
}

// setTheme accepts a base name or an explicit -dark/-light variant.
func setTheme(call *dispatchers.CallContext, deps Deps) error {
	name, _ := call.Argument(0)

	if _, ok := deps.Themes[name]; !ok && !slices.Contains(deps.BaseNames, name) {
		call.Reply("%s unknown theme: %s", deps.Styler.Error("error:"), name)
		call.Reply("available themes: %s", strings.Join(deps.BaseNames, ", "))
		return fmt.Errorf("unknown theme: %s", name)
	}

	if err := deps.Set("theme", name); err != nil {
		return err
	}

	call.Reply("theme set to %s", deps.Styler.Success(name))
	return nil
}
