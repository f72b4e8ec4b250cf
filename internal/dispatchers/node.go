package dispatchers

import (
	"fmt"
	"slices"
)

// Sender is whoever issued a command: a console, a chat user, a network
// session. The dispatcher never assumes a transport.
type Sender interface {
	SendMessage(format string, args ...any)
	HasPermission(permission string) bool
}

// NodeAuthorizer is implemented by senders that decide per command whether
// the command may be listed for them.
type NodeAuthorizer interface {
	Authorized(node *Node) bool
}

// ActionFunc is the callable bound to a command.
type ActionFunc func(sender Sender, call *CallContext) error

// RestrictionFunc is an allow/deny hook that is independent of permissions
// (cooldowns, world state, maintenance windows).
type RestrictionFunc func(sender Sender, node *Node) bool

// ArgSpec describes one positional argument.
type ArgSpec struct {
	Name        string
	Description string
	Position    int
	Optional    bool
	Decimal     bool
	Integer     bool
	Page        bool // carries a 1-based page number
}

// Required reports whether the argument must be supplied.
func (a ArgSpec) Required() bool {
	return !a.Optional
}

// Node is a command in the command tree. Name is its identity; identifiers
// are the tokens that trigger it at its level of the tree.
type Node struct {
	Name        string
	Usage       string
	Description string
	Args        []ArgSpec
	Children    []*Node
	Aliases     []*Node
	Permissions []string

	NeedAllPermissions bool
	// Infinite nodes never execute themselves; they only route to children.
	Infinite     bool
	Asynchronous bool

	Action      ActionFunc
	Restriction RestrictionFunc

	identifiers []string
	// invalid holds a builder error surfaced by Check.
	invalid string
}

// Identifiers returns a copy of the node's identifiers.
func (n *Node) Identifiers() []string {
	return slices.Clone(n.identifiers)
}

// PrimaryIdentifier returns the first identifier, or MissingIdentifier when
// the node has none.
func (n *Node) PrimaryIdentifier() string {
	if len(n.identifiers) == 0 {
		return MissingIdentifier
	}
	return n.identifiers[0]
}

// IsIdentifier reports whether identifier triggers this node.
func (n *Node) IsIdentifier(identifier string) bool {
	return slices.Contains(n.identifiers, identifier)
}

// MinArguments is the number of required arguments.
func (n *Node) MinArguments() int {
	min := 0
	for _, a := range n.Args {
		if a.Required() {
			min++
		}
	}
	return min
}

// MaxArguments is the total number of arguments.
func (n *Node) MaxArguments() int {
	return len(n.Args)
}

// AcceptsArguments reports whether count lies within the node's arity.
func (n *Node) AcceptsArguments(count int) bool {
	return count >= n.MinArguments() && count <= n.MaxArguments()
}

// AddArgument appends an argument at the next position.
func (n *Node) AddArgument(arg ArgSpec) *Node {
	arg.Position = len(n.Args)
	n.Args = append(n.Args, arg)
	return n
}

// AddPermission adds permissions, skipping ones already present.
func (n *Node) AddPermission(permissions ...string) *Node {
	for _, p := range permissions {
		if !slices.Contains(n.Permissions, p) {
			n.Permissions = append(n.Permissions, p)
		}
	}
	return n
}

// AddAlias attaches a node whose action also runs whenever n executes.
func (n *Node) AddAlias(alias *Node) *Node {
	n.Aliases = append(n.Aliases, alias)
	return n
}

// AddSubCommand appends a child command.
func (n *Node) AddSubCommand(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// PageArgument returns the position of the page-carrying argument.
func (n *Node) PageArgument() (int, bool) {
	for i, a := range n.Args {
		if a.Page {
			return i, true
		}
	}
	return 0, false
}

func (n *Node) String() string {
	return fmt.Sprintf("%s%v[%d..%d]", n.Name, n.identifiers, n.MinArguments(), n.MaxArguments())
}
