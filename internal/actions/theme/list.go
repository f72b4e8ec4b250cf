package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

func List(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return list(call, deps)
	}
}

func list(call *dispatchers.CallContext, deps Deps) error {
	current, _ := deps.Get("theme")

	call.Reply("Available themes (* = current)")
	for _, name := range deps.BaseNames {
		marker := "  "
		if name == current {
			marker = deps.Styler.Success("* ")
		}
		preview := ""
		if deps.Styler.Enabled() {
			preview = renderColorPreview(deps.Themes[deps.Resolve(name)])
		}
		call.Reply("%s%-8s  %s", marker, name, preview)
	}
	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("active", cfg.Active)
}
