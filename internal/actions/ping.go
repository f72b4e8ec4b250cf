package actions

import (
	"sync"
	"time"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Cooldown blocks a command until interval has passed since its last run.
type Cooldown struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last map[*dispatchers.Node]time.Time
}

func NewCooldown(interval time.Duration, now func() time.Time) *Cooldown {
	return &Cooldown{
		interval: interval,
		now:      now,
		last:     make(map[*dispatchers.Node]time.Time),
	}
}

// Allow is a dispatchers.RestrictionFunc.
func (c *Cooldown) Allow(_ dispatchers.Sender, node *dispatchers.Node) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.last[node]
	return !ok || c.now().Sub(last) >= c.interval
}

// Track wraps action so every successful run restarts the cooldown.
func (c *Cooldown) Track(action dispatchers.ActionFunc) dispatchers.ActionFunc {
	return func(sender dispatchers.Sender, call *dispatchers.CallContext) error {
		if err := action(sender, call); err != nil {
			return err
		}
		c.mu.Lock()
		c.last[call.Command] = c.now()
		c.mu.Unlock()
		return nil
	}
}

func Ping(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		call.Reply("%s", deps.Styler.Success("pong"))
		return nil
	}
}
