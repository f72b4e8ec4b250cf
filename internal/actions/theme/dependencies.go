package theme

import (
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

type Deps struct {
	Get       func(string) (string, bool)
	Set       func(string, string) error
	Styler    domain.Styler
	BaseNames []string
	Themes    map[string]style.ColorConfig
	Resolve   func(string) string
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Get:       app.Config.Get,
		Set:       app.Config.Set,
		Styler:    app.Styler,
		BaseNames: style.BaseThemeNames,
		Themes:    style.Themes,
		Resolve:   style.ResolveThemeName,
	}
}
