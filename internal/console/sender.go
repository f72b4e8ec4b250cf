package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Wildcard grants every permission.
const Wildcard = "*"

// Sender is a terminal user issuing command lines.
type Sender struct {
	name        string
	out         io.Writer
	permissions map[string]struct{}
}

// NewSender creates a sender that writes replies to out.
func NewSender(name string, out io.Writer, permissions []string) *Sender {
	set := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return &Sender{name: name, out: out, permissions: set}
}

// ParsePermissions splits a comma-separated permission list.
func ParsePermissions(value string) []string {
	var perms []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return perms
}

func (s *Sender) Name() string {
	return s.name
}

// SendMessage writes one formatted line.
func (s *Sender) SendMessage(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Sender) HasPermission(permission string) bool {
	if _, ok := s.permissions[Wildcard]; ok {
		return true
	}
	_, ok := s.permissions[permission]
	return ok
}

// Authorized reports whether the sender holds the node's permissions.
func (s *Sender) Authorized(node *dispatchers.Node) bool {
	return node.HasPermission(s)
}

var (
	_ dispatchers.Sender         = (*Sender)(nil)
	_ dispatchers.NodeAuthorizer = (*Sender)(nil)
)
