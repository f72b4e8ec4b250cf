package dispatchers

import (
	"fmt"
	"slices"
)

func NewNode(
	name string,
	parent *Node,
	usage string,
	identifiers []string,
	args []ArgSpec,
	action ActionFunc,
) *Node {

	node := &Node{
		Name:        name,
		Usage:       usage,
		Action:      action,
		identifiers: slices.Clone(identifiers),
	}

	for _, a := range args {
		node.AddArgument(a)
	}

	if parent != nil {
		parent.AddSubCommand(node)
	}

	return node
}

func Command(spec CommandSpec) *Node {
	args := spec.Args
	var invalid string
	if len(args) == 0 {
		switch {
		case spec.MinArguments < 0 || spec.MinArguments > spec.MaxArguments:
			invalid = fmt.Sprintf("arity [%d,%d] is not a valid range", spec.MinArguments, spec.MaxArguments)
		case spec.MaxArguments > 0:
			args = ArgumentsFromArity(spec.MinArguments, spec.MaxArguments, spec.ArgumentNames)
		}
	}

	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Usage,
		spec.Identifiers,
		args,
		spec.Action,
	)

	node.Description = spec.Description
	node.NeedAllPermissions = spec.NeedAllPermissions
	node.Infinite = spec.Infinite
	node.Asynchronous = spec.Asynchronous
	node.Restriction = spec.Restriction
	node.invalid = invalid
	node.AddPermission(spec.Permissions...)
	return node
}

func Group(spec GroupSpec) *Node {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Usage,
		spec.Identifiers,
		nil,
		nil,
	)

	node.Infinite = true
	node.AddPermission(spec.Permissions...)
	return node
}

// ArgumentsFromArity builds max arguments of which the first min are
// required. Missing names become "paramN".
func ArgumentsFromArity(min, max int, names []string) []ArgSpec {
	args := make([]ArgSpec, 0, max)
	for i := 0; i < max; i++ {
		name := fmt.Sprintf("param%d", i)
		if i < len(names) {
			name = names[i]
		}
		args = append(args, ArgSpec{Name: name, Position: i, Optional: i >= min})
	}
	return args
}
