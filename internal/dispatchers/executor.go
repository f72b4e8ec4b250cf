package dispatchers

import (
	"sync"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

func (d *Dispatcher) execute(call *CallContext) error {
	if d.async && call.Command.Asynchronous {
		d.queue.push(call)
		d.logger.Debug("dispatch: queued %s", call.Command.Name)
		return nil
	}
	return d.run(call)
}

// run invokes the command and then its aliases in order. The first failing
// action stops the chain.
func (d *Dispatcher) run(call *CallContext) error {
	if err := d.invoke(call.Command, call); err != nil {
		return err
	}

	for _, alias := range call.Command.Aliases {
		if alias.Action == nil {
			continue
		}
		if err := alias.Action(call.Sender, call); err != nil {
			d.logger.Error("dispatch: alias %s of %s failed: %v", alias.Name, call.Command.Name, err)
			return usage.NewCommandError(alias.Name, err)
		}
	}
	return nil
}

// invoke brackets the action with the pre and post hooks. PostCommand fires
// even when the action fails or panics.
func (d *Dispatcher) invoke(node *Node, call *CallContext) error {
	d.listener.PreCommand(call)
	defer d.listener.PostCommand(call)

	if node.Action == nil {
		return nil
	}
	if err := node.Action(call.Sender, call); err != nil {
		d.logger.Error("dispatch: %s failed: %v", node.Name, err)
		return usage.NewCommandError(node.Name, err)
	}
	return nil
}

// Drain runs queued asynchronous calls in FIFO order and stops at the first
// failure. Calls queued while draining are run in the same pass.
func (d *Dispatcher) Drain() error {
	for {
		call, ok := d.queue.pop()
		if !ok {
			return nil
		}
		if err := d.run(call); err != nil {
			return err
		}
	}
}

// Pending is the number of queued asynchronous calls.
func (d *Dispatcher) Pending() int {
	return d.queue.len()
}

type callQueue struct {
	mu    sync.Mutex
	calls []*CallContext
}

func (q *callQueue) push(call *CallContext) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.calls = append(q.calls, call)
}

func (q *callQueue) pop() (*CallContext, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.calls) == 0 {
		return nil, false
	}
	call := q.calls[0]
	q.calls[0] = nil
	q.calls = q.calls[1:]
	return call, true
}

func (q *callQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.calls)
}
