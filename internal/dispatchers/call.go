package dispatchers

import (
	"fmt"
	"strconv"
)

// CallContext is what a command action receives: who called, which node
// matched, and the arguments left after the command path.
type CallContext struct {
	Identifier string
	Arguments  []string
	Command    *Node
	Sender     Sender

	dispatcher *Dispatcher
}

func newCallContext(d *Dispatcher, node *Node, sender Sender, identifier string, args []string) *CallContext {
	return &CallContext{
		Identifier: identifier,
		Arguments:  args,
		Command:    node,
		Sender:     sender,
		dispatcher: d,
	}
}

// Reply sends a message back to the caller.
func (c *CallContext) Reply(format string, args ...any) {
	c.Sender.SendMessage(format, args...)
}

// Argument returns the argument at position i.
func (c *CallContext) Argument(i int) (string, bool) {
	if i < 0 || i >= len(c.Arguments) {
		return "", false
	}
	return c.Arguments[i], true
}

// Integer parses the argument at i, returning PageParseFailed when it is
// missing or malformed.
func (c *CallContext) Integer(i int) int {
	arg, ok := c.Argument(i)
	if !ok {
		return PageParseFailed
	}
	return ParseInteger(arg)
}

func (c *CallContext) Decimal(i int) (float64, bool) {
	arg, ok := c.Argument(i)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (c *CallContext) PageSize() int {
	if c.dispatcher == nil {
		return DefaultPageSize
	}
	return c.dispatcher.PageSize()
}

// HasPage reports whether the command declares a page argument.
func (c *CallContext) HasPage() bool {
	_, ok := c.Command.PageArgument()
	return ok
}

// PageToken returns the raw page token if one was supplied.
func (c *CallContext) PageToken() (string, bool) {
	i, ok := c.Command.PageArgument()
	if !ok {
		return "", false
	}
	return c.Argument(i)
}

// Page is PageWith using the dispatcher's page size.
func (c *CallContext) Page(total int) int {
	return c.PageWith(total, c.PageSize())
}

// PageWith returns the 0-based page selected by the caller for total
// entries. A missing token selects the first page; a malformed one yields
// PageParseFailed.
func (c *CallContext) PageWith(total, perPage int) int {
	token, ok := c.PageToken()
	if !ok {
		return 0
	}
	requested, err := strconv.Atoi(token)
	if err != nil {
		return PageParseFailed
	}
	return NormalizePage(requested, total, perPage)
}

func (c *CallContext) StartIndex(page, total int) int {
	start, _ := PageBounds(page, total, c.PageSize())
	return start
}

func (c *CallContext) EndIndex(page, total int) int {
	_, end := PageBounds(page, total, c.PageSize())
	return end
}

func (c *CallContext) String() string {
	return fmt.Sprintf("%s %v -> %s", c.Identifier, c.Arguments, c.Command.Name)
}
