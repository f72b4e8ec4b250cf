package config

import (
	"github.com/footprint-tools/cmdtree/internal/domain"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(string, string) error
	Unset  func(string) error
	Styler domain.Styler
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		Get:    app.Config.Get,
		GetAll: app.Config.GetAll,
		Set:    app.Config.Set,
		Unset:  app.Config.Unset,
		Styler: app.Styler,
	}
}
