package testutil

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Sender records every message it is sent.
type Sender struct {
	Messages    []string
	Permissions []string
}

func (s *Sender) SendMessage(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
}

func (s *Sender) HasPermission(permission string) bool {
	return slices.Contains(s.Permissions, "*") || slices.Contains(s.Permissions, permission)
}

// Call builds a call context for invoking node's action directly, without a
// dispatcher. The default page size applies.
func Call(node *dispatchers.Node, sender dispatchers.Sender, args ...string) *dispatchers.CallContext {
	return &dispatchers.CallContext{
		Identifier: node.PrimaryIdentifier(),
		Arguments:  args,
		Command:    node,
		Sender:     sender,
	}
}

// Run invokes node's action with args and returns the sender's messages.
func Run(node *dispatchers.Node, sender *Sender, args ...string) ([]string, error) {
	err := node.Action(sender, Call(node, sender, args...))
	return sender.Messages, err
}
