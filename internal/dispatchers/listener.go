package dispatchers

// Listener receives dispatch notifications. Embed NopListener to implement
// only the hooks you need.
type Listener interface {
	PreCommand(call *CallContext)
	PostCommand(call *CallContext)
	DisplayCommandHelp(sender Sender, node *Node)
	CommandNotFound(sender Sender, identifier string)
	PermissionFailed(sender Sender, node *Node)
	PermissionsFailed(sender Sender)
	ExecutionBlocked(sender Sender, node *Node)
}

type NopListener struct{}

func (NopListener) PreCommand(*CallContext)          {}
func (NopListener) PostCommand(*CallContext)         {}
func (NopListener) DisplayCommandHelp(Sender, *Node) {}
func (NopListener) CommandNotFound(Sender, string)   {}
func (NopListener) PermissionFailed(Sender, *Node)   {}
func (NopListener) PermissionsFailed(Sender)         {}
func (NopListener) ExecutionBlocked(Sender, *Node)   {}

var _ Listener = NopListener{}
