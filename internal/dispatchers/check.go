package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Check validates the node and its whole subtree. Registration refuses
// nodes that fail it.
func (n *Node) Check() error {
	return n.check(map[*Node]bool{})
}

func (n *Node) check(ancestors map[*Node]bool) error {
	if ancestors[n] {
		return usage.InvalidCommand(n.Name, "is its own ancestor")
	}

	if n.Name == "" {
		return usage.InvalidCommand("", "has no name")
	}
	if n.Usage == "" {
		return usage.InvalidCommand(n.Name, "has no usage")
	}
	if n.invalid != "" {
		return usage.InvalidCommand(n.Name, n.invalid)
	}
	if len(n.identifiers) == 0 {
		return usage.InvalidCommand(n.Name, "has no identifiers")
	}
	for _, id := range n.identifiers {
		if id == "" {
			return usage.InvalidCommand(n.Name, "has an empty identifier")
		}
		if strings.Contains(id, " ") {
			return usage.InvalidCommand(n.Name, fmt.Sprintf("identifier %q contains a space", id))
		}
	}

	pages := 0
	for i, a := range n.Args {
		if a.Position != i {
			return usage.InvalidCommand(n.Name,
				fmt.Sprintf("argument %q is at position %d, expected %d", a.Name, a.Position, i))
		}
		if a.Page {
			pages++
		}
	}
	if pages > 1 {
		return usage.InvalidCommand(n.Name, "has more than one page argument")
	}

	for _, alias := range n.Aliases {
		if alias == nil {
			return usage.InvalidCommand(n.Name, "has a nil alias")
		}
		if alias.Name == "" || alias.Usage == "" {
			return usage.InvalidCommand(n.Name, "has an alias without name or usage")
		}
	}

	ancestors[n] = true
	defer delete(ancestors, n)

	for _, child := range n.Children {
		if child == nil {
			return usage.InvalidCommand(n.Name, "has a nil sub-command")
		}
		if err := child.check(ancestors); err != nil {
			return err
		}
	}
	return nil
}
