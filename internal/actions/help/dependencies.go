package help

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

type Deps struct {
	Commands   func() []*dispatchers.Node
	Format     func() string
	Colors     func() style.ColorConfig
	PageSize   func() int
	IsTerminal func() bool
	Run        func(tea.Model) error
}

type colorSource interface {
	Colors() style.ColorConfig
}

func NewDeps(app *domain.Application, d *dispatchers.Dispatcher) Deps {
	return Deps{
		Commands: d.Commands,
		Format: func() string {
			format, _ := app.Config.Get("help_format")
			return format
		},
		Colors: func() style.ColorConfig {
			if src, ok := app.Styler.(colorSource); ok {
				return src.Colors()
			}
			return style.ColorConfig{}
		},
		PageSize: d.PageSize,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Run: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}
