package actions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/testutil"
)

func TestCooldown(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cooldown := NewCooldown(time.Minute, func() time.Time { return now })

	node := command("ping", 0, cooldown.Track(Ping(testDeps())))
	node.Restriction = cooldown.Allow

	d := dispatchers.New(nil)
	require.NoError(t, d.Register(node))
	sender := &testutil.Sender{}

	outcome, err := d.ExecuteLine(sender, "ping")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)

	outcome, err = d.ExecuteLine(sender, "ping")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeBlocked, outcome)

	now = now.Add(time.Minute)
	outcome, err = d.ExecuteLine(sender, "ping")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)
	require.Equal(t, []string{"pong", "pong"}, sender.Messages)
}
