package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode_NoParent(t *testing.T) {
	node := NewNode("version", nil, "Show version", []string{"version", "v"}, nil, nil)

	require.Equal(t, "version", node.Name)
	require.Equal(t, []string{"version", "v"}, node.Identifiers())
	require.Equal(t, "version", node.PrimaryIdentifier())
	require.Empty(t, node.Children)
}

func TestNewNode_WithParent(t *testing.T) {
	parent := NewNode("config", nil, "Manage config", []string{"config"}, nil, nil)
	child := NewNode("get", parent, "Get a value", []string{"get"}, nil, nil)

	require.Equal(t, []*Node{child}, parent.Children)
}

func TestNewNode_PositionsArguments(t *testing.T) {
	node := NewNode("set", nil, "Set a value", []string{"set"}, []ArgSpec{
		{Name: "key", Position: 7},
		{Name: "value", Optional: true},
	}, nil)

	require.Equal(t, 0, node.Args[0].Position)
	require.Equal(t, 1, node.Args[1].Position)
	require.Equal(t, 1, node.MinArguments())
	require.Equal(t, 2, node.MaxArguments())
}

func TestNewNode_IdentifiersAreCopied(t *testing.T) {
	ids := []string{"a", "b"}
	node := NewNode("a", nil, "A", ids, nil, nil)

	ids[0] = "changed"
	node.Identifiers()[1] = "changed"

	require.Equal(t, []string{"a", "b"}, node.Identifiers())
}

func TestNode_PrimaryIdentifierMissing(t *testing.T) {
	node := NewNode("anon", nil, "Anonymous", nil, nil, nil)
	require.Equal(t, MissingIdentifier, node.PrimaryIdentifier())
}

func TestGroup(t *testing.T) {
	group := Group(GroupSpec{
		Name:        "config",
		Usage:       "Manage configuration",
		Identifiers: []string{"config"},
		Permissions: []string{"config.use"},
	})

	require.True(t, group.Infinite)
	require.Nil(t, group.Action)
	require.Equal(t, []string{"config.use"}, group.Permissions)
}

func TestCommand(t *testing.T) {
	restriction := func(Sender, *Node) bool { return true }

	node := Command(CommandSpec{
		Name:               "ban",
		Usage:              "Ban a user",
		Description:        "Bans a user for a while",
		Identifiers:        []string{"ban"},
		Args:               []ArgSpec{{Name: "user"}},
		Permissions:        []string{"mod", "mod", "admin"},
		NeedAllPermissions: true,
		Asynchronous:       true,
		Restriction:        restriction,
	})

	require.Equal(t, "Bans a user for a while", node.Description)
	require.Equal(t, []string{"mod", "admin"}, node.Permissions)
	require.True(t, node.NeedAllPermissions)
	require.True(t, node.Asynchronous)
	require.NotNil(t, node.Restriction)
	require.Equal(t, 1, node.MinArguments())
}

func TestCommand_ArgumentsFromArity(t *testing.T) {
	node := Command(CommandSpec{
		Name:          "tp",
		Usage:         "Teleport",
		Identifiers:   []string{"tp"},
		MinArguments:  1,
		MaxArguments:  3,
		ArgumentNames: []string{"target"},
	})

	require.Len(t, node.Args, 3)
	require.Equal(t, "target", node.Args[0].Name)
	require.Equal(t, "param1", node.Args[1].Name)
	require.Equal(t, "param2", node.Args[2].Name)
	require.False(t, node.Args[0].Optional)
	require.True(t, node.Args[1].Optional)
	require.Equal(t, 1, node.MinArguments())
	require.Equal(t, 3, node.MaxArguments())
}

func TestNode_Chaining(t *testing.T) {
	alias := NewNode("log", nil, "Log", []string{"log"}, nil, nil)
	child := NewNode("child", nil, "Child", []string{"child"}, nil, nil)

	node := NewNode("root", nil, "Root", []string{"root"}, nil, nil).
		AddArgument(ArgSpec{Name: "a"}).
		AddArgument(ArgSpec{Name: "b", Optional: true}).
		AddPermission("p1", "p2", "p1").
		AddAlias(alias).
		AddSubCommand(child)

	require.Equal(t, 1, node.Args[1].Position)
	require.Equal(t, []string{"p1", "p2"}, node.Permissions)
	require.Equal(t, []*Node{alias}, node.Aliases)
	require.Equal(t, []*Node{child}, node.Children)
	require.True(t, node.AcceptsArguments(1))
	require.True(t, node.AcceptsArguments(2))
	require.False(t, node.AcceptsArguments(0))
	require.False(t, node.AcceptsArguments(3))
}

func TestNode_PageArgument(t *testing.T) {
	node := NewNode("list", nil, "List", []string{"list"}, []ArgSpec{
		{Name: "filter", Optional: true},
		{Name: "page", Optional: true, Page: true},
	}, nil)

	pos, ok := node.PageArgument()
	require.True(t, ok)
	require.Equal(t, 1, pos)

	_, ok = NewNode("x", nil, "X", []string{"x"}, nil, nil).PageArgument()
	require.False(t, ok)
}
