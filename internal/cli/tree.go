package cli

import (
	"time"

	"github.com/footprint-tools/cmdtree/internal/actions"
	configactions "github.com/footprint-tools/cmdtree/internal/actions/config"
	helpactions "github.com/footprint-tools/cmdtree/internal/actions/help"
	"github.com/footprint-tools/cmdtree/internal/actions/history"
	"github.com/footprint-tools/cmdtree/internal/actions/logs"
	"github.com/footprint-tools/cmdtree/internal/actions/theme"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// PingCooldown is how long ping stays blocked after it ran.
const PingCooldown = 3 * time.Second

// BuildTree registers the built-in command set on d.
func BuildTree(app *domain.Application, d *dispatchers.Dispatcher) error {
	deps := actions.NewDeps(app, d)
	format, _ := app.Config.Get("help_format")

	roots := []*dispatchers.Node{
		dispatchers.NewHelpCommand(d, dispatchers.HelpSpec{Format: format}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "browse",
			Usage:       "Browses the command list interactively",
			Identifiers: []string{"browse"},
			Action:      helpactions.Browser(helpactions.NewDeps(app, d)),
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "tree",
			Usage:       "Shows every command in one listing",
			Identifiers: []string{"tree"},
			Action:      actions.Tree(deps),
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "version",
			Usage:       "Shows the cmdtree version",
			Identifiers: []string{"version", "v"},
			Action:      actions.ShowVersion(deps),
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "echo",
			Usage:       "Repeats the given words",
			Identifiers: []string{"echo", "say"},
			Args:        repeatedArgs("word", 1, actions.EchoMaxWords),
			Action:      actions.Echo,
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:         "notify",
			Usage:        "Prints a notice once the current line has finished",
			Identifiers:  []string{"notify"},
			Args:         repeatedArgs("word", 1, actions.EchoMaxWords),
			Asynchronous: true,
			Action:       actions.Notify(deps),
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "whoami",
			Usage:       "Shows who you are and which permissions you hold",
			Identifiers: []string{"whoami"},
			Args:        repeatedArgs("permission", 0, 4),
			Action:      actions.WhoAmI(deps),
		}),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "complete",
			Usage:       "Lists the words that can follow a partial line",
			Identifiers: []string{"complete"},
			Args:        repeatedArgs("word", 0, 8),
			Action:      actions.Complete(deps),
		}),

		pingCommand(deps),
		configCommand(app),
		themeCommand(app),
		historyCommand(app),

		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "logs",
			Usage:       "Shows the log file, newest first",
			Identifiers: []string{"logs"},
			Args:        PageArg,
			Permissions: []string{PermAdmin},
			Action:      logs.View(logs.NewDeps(app)),
		}),
	}

	for _, root := range roots {
		if err := d.RegisterUnique(root); err != nil {
			return err
		}
	}
	return nil
}

func pingCommand(deps actions.Deps) *dispatchers.Node {
	cooldown := actions.NewCooldown(PingCooldown, deps.Now)
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:        "ping",
		Usage:       "Replies with pong, at most once every few seconds",
		Identifiers: []string{"ping"},
		Action:      cooldown.Track(actions.Ping(deps)),
		Restriction: cooldown.Allow,
	})
}

func configCommand(app *domain.Application) *dispatchers.Node {
	deps := configactions.NewDeps(app)

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:        "config",
		Usage:       "Manages configuration",
		Identifiers: []string{"config", "cfg"},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "config-get",
		Parent:      config,
		Usage:       "Prints a config value",
		Identifiers: []string{"get"},
		Args:        ConfigKeyArg,
		Action:      configactions.Get(deps),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "config-set",
		Parent:      config,
		Usage:       "Writes a config value",
		Identifiers: []string{"set"},
		Args:        ConfigKeyValueArgs,
		Permissions: []string{PermConfig},
		Action:      configactions.Set(deps),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "config-unset",
		Parent:      config,
		Usage:       "Restores a config value to its default",
		Identifiers: []string{"unset"},
		Args:        ConfigKeyArg,
		Permissions: []string{PermConfig},
		Action:      configactions.Unset(deps),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "config-list",
		Parent:      config,
		Usage:       "Lists config values by section",
		Identifiers: []string{"list", "ls"},
		Action:      configactions.List(deps),
	})

	return config
}

func themeCommand(app *domain.Application) *dispatchers.Node {
	deps := theme.NewDeps(app)

	group := dispatchers.Group(dispatchers.GroupSpec{
		Name:        "theme",
		Usage:       "Manages color themes",
		Identifiers: []string{"theme"},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "theme-list",
		Parent:      group,
		Usage:       "Lists the available themes",
		Identifiers: []string{"list", "ls"},
		Action:      theme.List(deps),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "theme-set",
		Parent:      group,
		Usage:       "Selects a theme",
		Identifiers: []string{"set"},
		Args:        ThemeNameArg,
		Permissions: []string{PermConfig},
		Action:      theme.Set(deps),
	})

	return group
}

func historyCommand(app *domain.Application) *dispatchers.Node {
	deps := history.NewDeps(app)

	node := dispatchers.Command(dispatchers.CommandSpec{
		Name:        "history",
		Usage:       "Shows previously dispatched lines",
		Identifiers: []string{"history", "hist"},
		Args:        PageArg,
		Permissions: []string{PermHistory},
		Action:      history.List(deps),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "history-clear",
		Parent:      node,
		Usage:       "Deletes all recorded lines",
		Identifiers: []string{"clear"},
		Permissions: []string{PermAdmin},
		Action:      history.Clear(deps),
	})

	return node
}
