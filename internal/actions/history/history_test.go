package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/testutil"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func listNode(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:        "history",
		Usage:       "Shows dispatched lines",
		Identifiers: []string{"history"},
		Args:        []dispatchers.ArgSpec{{Name: "page", Optional: true, Integer: true, Page: true}},
		Action:      List(deps),
	})
}

func seeded(t *testing.T, n int) Deps {
	t.Helper()
	s := testutil.NewTestStore(t)
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "echo " + string(rune('a'+i))
	}
	testutil.SeedHistory(t, s, "alice", lines...)
	return Deps{History: s, Styler: style.NopStyler{}}
}

func TestList_Empty(t *testing.T) {
	deps := Deps{History: testutil.NewTestStore(t), Styler: style.NopStyler{}}

	out, err := testutil.Run(listNode(deps), &testutil.Sender{})

	require.NoError(t, err)
	require.Equal(t, []string{"No history yet"}, out)
}

func TestList_FirstPageNewestFirst(t *testing.T) {
	out, err := testutil.Run(listNode(seeded(t, 12)), &testutil.Sender{})

	require.NoError(t, err)
	require.Len(t, out, 11)
	require.Equal(t, "History (page 1/2)", out[0])
	require.Contains(t, out[1], "echo l")
	require.Contains(t, out[10], "echo c")
}

func TestList_SecondPage(t *testing.T) {
	out, err := testutil.Run(listNode(seeded(t, 12)), &testutil.Sender{}, "2")

	require.NoError(t, err)
	require.Equal(t, "History (page 2/2)", out[0])
	require.Len(t, out, 3)
	require.Contains(t, out[1], "alice")
	require.Contains(t, out[1], "echo b")
	require.Contains(t, out[2], "echo a")
}

func TestList_PageClampedToLast(t *testing.T) {
	out, err := testutil.Run(listNode(seeded(t, 12)), &testutil.Sender{}, "99")

	require.NoError(t, err)
	require.Equal(t, "History (page 2/2)", out[0])
}

func TestList_InvalidPage(t *testing.T) {
	_, err := testutil.Run(listNode(seeded(t, 3)), &testutil.Sender{}, "two")

	require.True(t, usage.Is(err, usage.ErrInvalidPage))
}

func TestList_ShowsFailures(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, s.Record(domain.HistoryRecord{Sender: "bob", Line: "nope", Outcome: "not found"}))
	require.NoError(t, s.Record(domain.HistoryRecord{Sender: "bob", Line: "boom", Outcome: "executed", Error: "boom: failed"}))

	out, err := testutil.Run(listNode(Deps{History: s, Styler: style.NopStyler{}}), &testutil.Sender{})

	require.NoError(t, err)
	joined := strings.Join(out, "\n")
	require.Contains(t, joined, "nope (not found)")
	require.Contains(t, joined, "boom (boom: failed)")
}

func TestClear(t *testing.T) {
	deps := seeded(t, 4)
	node := dispatchers.Command(dispatchers.CommandSpec{
		Name:        "clear",
		Usage:       "Deletes history",
		Identifiers: []string{"clear"},
		Action:      Clear(deps),
	})

	out, err := testutil.Run(node, &testutil.Sender{})

	require.NoError(t, err)
	require.Equal(t, []string{"removed 4 entries"}, out)

	count, err := deps.History.Count(domain.HistoryFilter{})
	require.NoError(t, err)
	require.Zero(t, count)
}
