package dispatchers

import (
	"fmt"
	"slices"
)

type testSender struct {
	messages    []string
	permissions []string
	hidden      []string
}

func (s *testSender) SendMessage(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
}

func (s *testSender) HasPermission(permission string) bool {
	return slices.Contains(s.permissions, permission)
}

type authorizingSender struct {
	testSender
}

func (s *authorizingSender) Authorized(node *Node) bool {
	return !slices.Contains(s.hidden, node.Name)
}

// recordingListener logs every hook as "hook:subject".
type recordingListener struct {
	events []string
}

func (l *recordingListener) PreCommand(call *CallContext) {
	l.events = append(l.events, "pre:"+call.Command.Name)
}

func (l *recordingListener) PostCommand(call *CallContext) {
	l.events = append(l.events, "post:"+call.Command.Name)
}

func (l *recordingListener) DisplayCommandHelp(_ Sender, node *Node) {
	l.events = append(l.events, "help:"+node.Name)
}

func (l *recordingListener) CommandNotFound(_ Sender, identifier string) {
	l.events = append(l.events, "notfound:"+identifier)
}

func (l *recordingListener) PermissionFailed(_ Sender, node *Node) {
	l.events = append(l.events, "denied:"+node.Name)
}

func (l *recordingListener) PermissionsFailed(Sender) {
	l.events = append(l.events, "denied")
}

func (l *recordingListener) ExecutionBlocked(_ Sender, node *Node) {
	l.events = append(l.events, "blocked:"+node.Name)
}

// say returns an action that sends text to the caller.
func say(text string) ActionFunc {
	return func(sender Sender, _ *CallContext) error {
		sender.SendMessage("%s", text)
		return nil
	}
}

// testTree builds test -> sub -> subsub, each printing its own name.
func testTree() *Node {
	test := Command(CommandSpec{
		Name:         "test",
		Usage:        "test command",
		Identifiers:  []string{"test"},
		MaxArguments: 1,
		Action:       say("test"),
	})
	test.Args[0].Optional = false

	sub := Command(CommandSpec{
		Name:        "sub",
		Parent:      test,
		Usage:       "sub command",
		Identifiers: []string{"sub"},
		Action:      say("sub"),
	})

	Command(CommandSpec{
		Name:        "subsub",
		Parent:      sub,
		Usage:       "subsub command",
		Identifiers: []string{"subsub"},
		Action:      say("subsub"),
	})
	return test
}
