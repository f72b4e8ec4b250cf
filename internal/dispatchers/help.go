package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

const (
	DefaultHelpFormat = "{path}{args} - {usage}"
	DefaultHelpHeader = "Help (page %d/%d)"

	// MissingIdentifier stands in for a node without identifiers in paths.
	MissingIdentifier = "?"
)

// VisibilityFunc decides whether a node is listed for sender. It does not
// prune the node's children.
type VisibilityFunc func(sender Sender, node *Node) bool

// DefaultVisibility lists nodes whose restriction allows the sender and,
// when the sender implements NodeAuthorizer, that it authorizes.
func DefaultVisibility(sender Sender, node *Node) bool {
	if !node.AllowExecution(sender) {
		return false
	}
	if auth, ok := sender.(NodeAuthorizer); ok {
		return auth.Authorized(node)
	}
	return true
}

// HelpLine is one rendered entry of the help listing.
type HelpLine struct {
	Node *Node
	Path []string
	Text string
}

// BuildLines walks roots in pre-order and renders one line per visible node.
// Placeholders in format: {path}, {args}, {usage}.
func BuildLines(roots []*Node, sender Sender, format string, visible VisibilityFunc) []HelpLine {
	if format == "" {
		format = DefaultHelpFormat
	}
	if visible == nil {
		visible = DefaultVisibility
	}

	b := &lineBuilder{sender: sender, format: format, visible: visible}
	b.walk(roots)
	return b.lines
}

type lineBuilder struct {
	sender  Sender
	format  string
	visible VisibilityFunc
	path    []string
	lines   []HelpLine
}

func (b *lineBuilder) walk(nodes []*Node) {
	for _, node := range nodes {
		b.path = append(b.path, node.PrimaryIdentifier())

		if b.visible(b.sender, node) {
			path := make([]string, len(b.path))
			copy(path, b.path)
			b.lines = append(b.lines, HelpLine{
				Node: node,
				Path: path,
				Text: FormatLine(b.format, path, node),
			})
		}

		b.walk(node.Children)
		b.path = b.path[:len(b.path)-1]
	}
}

// FormatLine substitutes the help placeholders for node at path.
func FormatLine(format string, path []string, node *Node) string {
	return strings.NewReplacer(
		"{path}", strings.Join(path, " "),
		"{args}", FormatArguments(node.Args),
		"{usage}", node.Usage,
	).Replace(format)
}

// FormatArguments renders required arguments as <name> and optional ones
// as [name], each preceded by a space. A run of optional arguments that
// repeat the previous name renders once as "...".
func FormatArguments(args []ArgSpec) string {
	var sb strings.Builder
	prevCollapsed := false
	for i, a := range args {
		collapsed := i > 0 && a.Optional && a.Name == args[i-1].Name
		if collapsed {
			if !prevCollapsed {
				sb.WriteString(" ...")
			}
			prevCollapsed = true
			continue
		}
		prevCollapsed = false
		sb.WriteByte(' ')
		if a.Optional {
			sb.WriteString("[" + a.Name + "]")
		} else {
			sb.WriteString("<" + a.Name + ">")
		}
	}
	return sb.String()
}

// NewHelpCommand builds a paged help command listing d's command tree.
func NewHelpCommand(d *Dispatcher, spec HelpSpec) *Node {
	if spec.Name == "" {
		spec.Name = "help"
	}
	if spec.Usage == "" {
		spec.Usage = "Shows the command list"
	}
	if len(spec.Identifiers) == 0 {
		spec.Identifiers = []string{"help", "?"}
	}
	if spec.PageArgument == "" {
		spec.PageArgument = "page"
	}
	if spec.Header == "" {
		spec.Header = DefaultHelpHeader
	}

	return Command(CommandSpec{
		Name:        spec.Name,
		Usage:       spec.Usage,
		Identifiers: spec.Identifiers,
		Args: []ArgSpec{
			{Name: spec.PageArgument, Optional: true, Integer: true, Page: true},
		},
		Action: helpAction(d, spec),
	})
}

func helpAction(d *Dispatcher, spec HelpSpec) ActionFunc {
	return func(sender Sender, call *CallContext) error {
		lines := BuildLines(d.Commands(), sender, spec.Format, spec.Visible)

		page := call.Page(len(lines))
		if page == PageParseFailed {
			token, _ := call.PageToken()
			sender.SendMessage("%s", usage.InvalidPage(token).Error())
			return nil
		}

		start, end := PageBounds(page, len(lines), call.PageSize())
		sender.SendMessage(spec.Header, page+1, max(1, PageCount(len(lines), call.PageSize())))
		for _, line := range lines[start:end] {
			sender.SendMessage("%s", line.Text)
		}
		return nil
	}
}
