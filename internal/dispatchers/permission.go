package dispatchers

// HasPermission applies the node's permission policy: no permissions means
// open, otherwise any-of or all-of depending on NeedAllPermissions.
func (n *Node) HasPermission(sender Sender) bool {
	if len(n.Permissions) == 0 {
		return true
	}

	for _, p := range n.Permissions {
		granted := sender.HasPermission(p)
		if granted && !n.NeedAllPermissions {
			return true
		}
		if !granted && n.NeedAllPermissions {
			return false
		}
	}
	return n.NeedAllPermissions
}

// AllowExecution consults the restriction hook. A node without one is
// always allowed.
func (n *Node) AllowExecution(sender Sender) bool {
	return n.Restriction == nil || n.Restriction(sender, n)
}
