package dispatchers

// CommandSpec declares a command. When Args is empty and MaxArguments is
// set, arguments are derived from the arity and ArgumentNames.
type CommandSpec struct {
	Name        string
	Parent      *Node
	Usage       string
	Description string
	Identifiers []string
	Args        []ArgSpec

	MinArguments  int
	MaxArguments  int
	ArgumentNames []string

	Permissions        []string
	NeedAllPermissions bool
	Infinite           bool
	Asynchronous       bool

	Action      ActionFunc
	Restriction RestrictionFunc
}

// GroupSpec declares a grouping command that only routes to its children.
type GroupSpec struct {
	Name        string
	Parent      *Node
	Usage       string
	Identifiers []string
	Permissions []string
}

// HelpSpec configures the built-in help command. Zero values fall back to
// defaults.
type HelpSpec struct {
	Name         string
	Usage        string
	Identifiers  []string
	PageArgument string
	Format       string
	Header       string
	Visible      VisibilityFunc
}
