package console

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

const maxSuggestions = 3

// Listener renders dispatch notifications for a terminal user.
type Listener struct {
	logger   domain.Logger
	styler   domain.Styler
	commands func() []*dispatchers.Node
}

func NewListener(logger domain.Logger, styler domain.Styler) *Listener {
	return &Listener{logger: logger, styler: styler}
}

// Attach points suggestion lookups at d's registered commands.
func (l *Listener) Attach(d *dispatchers.Dispatcher) {
	l.commands = d.Commands
}

func (l *Listener) PreCommand(call *dispatchers.CallContext) {
	l.logger.Debug("console: running %s", call)
}

func (l *Listener) PostCommand(call *dispatchers.CallContext) {
	l.logger.Debug("console: finished %s", call.Command.Name)
}

// DisplayCommandHelp prints the usage line of node and its sub-commands.
func (l *Listener) DisplayCommandHelp(sender dispatchers.Sender, node *dispatchers.Node) {
	sender.SendMessage("%s", l.styler.Header(node.PrimaryIdentifier()+dispatchers.FormatArguments(node.Args)+" - "+node.Usage))
	for _, child := range node.Children {
		sender.SendMessage("  %s%s %s", child.PrimaryIdentifier(), dispatchers.FormatArguments(child.Args), l.styler.Muted(child.Usage))
	}
}

func (l *Listener) CommandNotFound(sender dispatchers.Sender, identifier string) {
	var suggestions []string
	if l.commands != nil && identifier != "" {
		suggestions = dispatchers.FindSimilarCommands(identifier, l.commands(), maxSuggestions)
	}
	sender.SendMessage("%s", l.styler.Error(usage.UnknownCommand(identifier, suggestions...).Error()))
}

func (l *Listener) PermissionFailed(_ dispatchers.Sender, node *dispatchers.Node) {
	l.logger.Info("console: permission denied for %s (needs %s)", node.Name, strings.Join(node.Permissions, ","))
}

func (l *Listener) PermissionsFailed(sender dispatchers.Sender) {
	sender.SendMessage("%s", l.styler.Error("You do not have permission to run this command."))
}

func (l *Listener) ExecutionBlocked(sender dispatchers.Sender, node *dispatchers.Node) {
	sender.SendMessage("%s", l.styler.Warning(node.PrimaryIdentifier()+" cannot be run right now."))
}

var _ dispatchers.Listener = (*Listener)(nil)
