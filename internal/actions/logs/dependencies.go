package logs

import (
	"os"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

type Deps struct {
	LogFilePath func() string
	ReadFile    func(string) ([]byte, error)
	Styler      domain.Styler
}

func NewDeps(app *domain.Application) Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		ReadFile:    os.ReadFile,
		Styler:      app.Styler,
	}
}
