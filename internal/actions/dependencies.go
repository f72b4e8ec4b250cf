package actions

import (
	"time"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

type actionDependencies struct {
	Version  func() string
	Pager    func(string)
	Styler   domain.Styler
	Logger   domain.Logger
	Commands func() []*dispatchers.Node
	Format   func() string
	Now      func() time.Time
}

// Deps is the exported handle the command tree passes to constructors here.
type Deps = actionDependencies

func NewDeps(application *domain.Application, d *dispatchers.Dispatcher) Deps {
	return actionDependencies{
		Version:  func() string { return app.Version },
		Pager:    application.Output.Pager,
		Styler:   application.Styler,
		Logger:   application.Logger,
		Commands: d.Commands,
		Format: func() string {
			format, _ := application.Config.Get("help_format")
			return format
		},
		Now: time.Now,
	}
}
