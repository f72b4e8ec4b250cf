package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

const DefaultPageSize = 10

// Dispatcher owns the registered root commands and routes command lines
// through them.
type Dispatcher struct {
	commands  []*Node
	listener  Listener
	logger    domain.Logger
	pageSize  int
	preferSub bool
	async     bool
	queue     callQueue
}

type Option func(*Dispatcher)

// WithPageSize sets the number of entries per page. Values below one
// disable paging.
func WithPageSize(size int) Option {
	return func(d *Dispatcher) {
		d.pageSize = size
	}
}

// WithPreferSubCommands controls whether a parent is skipped once one of
// its sub-commands has executed. It defaults to true.
func WithPreferSubCommands(prefer bool) Option {
	return func(d *Dispatcher) {
		d.preferSub = prefer
	}
}

func WithLogger(logger domain.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithAsync queues asynchronous commands instead of running them inline.
// Queued calls run on Drain.
func WithAsync() Option {
	return func(d *Dispatcher) {
		d.async = true
	}
}

func New(listener Listener, opts ...Option) *Dispatcher {
	if listener == nil {
		listener = NopListener{}
	}

	d := &Dispatcher{
		listener:  listener,
		logger:    log.NopLogger{},
		pageSize:  DefaultPageSize,
		preferSub: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a root command after validating it. Registering a command
// whose name is already registered is a no-op.
func (d *Dispatcher) Register(node *Node) error {
	if node == nil {
		return usage.InvalidCommand("", "is nil")
	}
	if d.IsRegistered(node) {
		d.logger.Debug("dispatch: %s already registered", node.Name)
		return nil
	}
	if err := node.Check(); err != nil {
		d.logger.Error("dispatch: rejected %s: %v", node.Name, err)
		return err
	}

	d.commands = append(d.commands, node)
	d.logger.Debug("dispatch: registered %s", node)
	return nil
}

// RegisterUnique is Register that reports a name clash instead of
// ignoring it.
func (d *Dispatcher) RegisterUnique(node *Node) error {
	if node != nil && d.IsRegistered(node) {
		return usage.DuplicateCommand(node.Name)
	}
	return d.Register(node)
}

// MustRegister registers nodes and panics on the first invalid one.
func (d *Dispatcher) MustRegister(nodes ...*Node) {
	for _, node := range nodes {
		if err := d.Register(node); err != nil {
			panic(err)
		}
	}
}

func (d *Dispatcher) IsRegistered(node *Node) bool {
	for _, c := range d.commands {
		if c.Name == node.Name {
			return true
		}
	}
	return false
}

// Commands returns the root commands in registration order.
func (d *Dispatcher) Commands() []*Node {
	out := make([]*Node, len(d.commands))
	copy(out, d.commands)
	return out
}

func (d *Dispatcher) PageSize() int {
	return d.pageSize
}

// Tokenize splits a command line on single spaces. The first token is the
// identifier.
func Tokenize(line string) (string, []string) {
	tokens := strings.Split(line, " ")
	return tokens[0], tokens[1:]
}

func (d *Dispatcher) ExecuteLine(sender Sender, line string) (Outcome, error) {
	identifier, args := Tokenize(line)
	return d.Execute(sender, identifier, args)
}

// Execute resolves identifier and args against the registered commands.
// Listener notifications for help, permission and restriction failures are
// emitted only when nothing executed.
func (d *Dispatcher) Execute(sender Sender, identifier string, args []string) (Outcome, error) {
	var rep report

	outcome, err := d.resolve(sender, identifier, args, d.commands, &rep)
	if err != nil {
		return outcome, err
	}

	d.logger.Debug("dispatch: %q %v: %s", identifier, args, outcome)
	d.notify(sender, identifier, outcome, &rep)
	return outcome, nil
}

func (d *Dispatcher) resolve(sender Sender, identifier string, args []string, nodes []*Node, rep *report) (Outcome, error) {
	executed := false

	for _, node := range nodes {
		if !node.IsIdentifier(identifier) {
			continue
		}

		if len(args) > 0 {
			var childRep report
			outcome, err := d.resolve(sender, args[0], args[1:], node.Children, &childRep)
			if err != nil {
				return outcome, err
			}
			if outcome == OutcomeExecuted {
				if d.preferSub {
					return OutcomeExecuted, nil
				}
				executed = true
			} else {
				rep.merge(childRep)
			}
		}

		if node.Infinite || !node.AcceptsArguments(len(args)) {
			if !executed {
				rep.help = append(rep.help, node)
			}
			continue
		}

		if !node.HasPermission(sender) {
			rep.denied = append(rep.denied, node)
			continue
		}

		if !node.AllowExecution(sender) {
			rep.blocked = append(rep.blocked, node)
			continue
		}

		return OutcomeExecuted, d.execute(newCallContext(d, node, sender, identifier, args))
	}

	if executed {
		return OutcomeExecuted, nil
	}
	return rep.outcome(), nil
}

func (d *Dispatcher) notify(sender Sender, identifier string, outcome Outcome, rep *report) {
	switch outcome {
	case OutcomeHelpDisplayed:
		for _, node := range rep.help {
			d.listener.DisplayCommandHelp(sender, node)
		}
	case OutcomePermissionDenied:
		for _, node := range rep.denied {
			d.listener.PermissionFailed(sender, node)
		}
		d.listener.PermissionsFailed(sender)
	case OutcomeBlocked:
		for _, node := range rep.blocked {
			d.listener.ExecutionBlocked(sender, node)
		}
	case OutcomeNotFound:
		d.listener.CommandNotFound(sender, identifier)
	}
}
