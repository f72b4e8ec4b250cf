package config

import (
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

func List(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return list(call, deps)
	}
}

// list prints the visible keys grouped by section. Keys marked HideIfEmpty
// appear only once they carry a value.
func list(call *dispatchers.CallContext, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		var rows []string
		for _, key := range bySection[section] {
			value := values[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			rows = append(rows, key.Name+"="+value)
		}
		if len(rows) == 0 {
			continue
		}

		call.Reply("%s", deps.Styler.Header("["+section+"]"))
		for _, row := range rows {
			call.Reply("%s", row)
		}
	}
	return nil
}
