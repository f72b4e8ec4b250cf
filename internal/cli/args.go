package cli

import "github.com/footprint-tools/cmdtree/internal/dispatchers"

var (
	PageArg = []dispatchers.ArgSpec{
		{
			Name:        "page",
			Description: "Page number, starting at 1",
			Optional:    true,
			Integer:     true,
			Page:        true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
		},
		{
			Name:        "value",
			Description: "Value to assign",
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name, optionally with a -dark or -light suffix",
		},
	}
)

// Permissions guarding the built-in commands.
const (
	PermConfig  = "cmdtree.config"
	PermHistory = "cmdtree.history"
	PermAdmin   = "cmdtree.admin"
)

// repeatedArgs declares max arguments sharing name, the first min of them
// required.
func repeatedArgs(name string, min, max int) []dispatchers.ArgSpec {
	names := make([]string, max)
	for i := range names {
		names[i] = name
	}
	return dispatchers.ArgumentsFromArity(min, max, names)
}
