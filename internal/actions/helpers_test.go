package actions

import (
	"time"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

func testDeps() actionDependencies {
	return actionDependencies{
		Version:  func() string { return "1.2.3" },
		Pager:    func(string) {},
		Styler:   style.NopStyler{},
		Logger:   log.NopLogger{},
		Commands: func() []*dispatchers.Node { return nil },
		Format:   func() string { return "" },
		Now:      time.Now,
	}
}

func command(name string, maxArgs int, action dispatchers.ActionFunc) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:         name,
		Usage:        name,
		Identifiers:  []string{name},
		MaxArguments: maxArgs,
		Action:       action,
	})
}
