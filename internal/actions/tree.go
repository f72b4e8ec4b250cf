package actions

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Tree sends the whole help listing, unpaged, through the pager.
func Tree(deps Deps) dispatchers.ActionFunc {
	return func(sender dispatchers.Sender, _ *dispatchers.CallContext) error {
		lines := dispatchers.BuildLines(deps.Commands(), sender, deps.Format(), nil)

		var sb strings.Builder
		for _, line := range lines {
			indent := strings.Repeat("  ", len(line.Path)-1)
			sb.WriteString(indent + line.Text + "\n")
		}
		deps.Pager(sb.String())
		return nil
	}
}
