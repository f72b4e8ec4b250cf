package history

import (
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/format"
)

type Deps struct {
	History domain.HistoryStore
	Styler  domain.Styler
	Layout  format.Layout
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		History: app.History,
		Styler:  app.Styler,
		Layout:  format.FromConfig(app.Config.Get),
	}
}
