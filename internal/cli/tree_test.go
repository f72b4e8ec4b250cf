package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/testutil"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func buildTestTree(t *testing.T) (*domain.Application, *dispatchers.Dispatcher) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	application := app.NewForTesting()
	application.History = testutil.NewTestStore(t)
	d := app.NewDispatcher(application, nil)
	require.NoError(t, BuildTree(application, d))
	return application, d
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	_, d := buildTestTree(t)

	var names []string
	for _, node := range d.Commands() {
		names = append(names, node.Name)
	}

	require.Equal(t, []string{
		"help",
		"browse",
		"tree",
		"version",
		"echo",
		"notify",
		"whoami",
		"complete",
		"ping",
		"config",
		"theme",
		"history",
		"logs",
	}, names)
}

func TestBuildTree_RejectsSecondRegistration(t *testing.T) {
	application, d := buildTestTree(t)

	err := BuildTree(application, d)

	require.True(t, usage.Is(err, usage.ErrDuplicateCommand))
}

func TestBuildTree_ConfigGet(t *testing.T) {
	_, d := buildTestTree(t)
	sender := &testutil.Sender{}

	outcome, err := d.ExecuteLine(sender, "config get page_size")

	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)
	require.Equal(t, []string{"10"}, sender.Messages)
}

func TestBuildTree_ConfigSetNeedsPermission(t *testing.T) {
	_, d := buildTestTree(t)

	// The group's help takes precedence over the sub-command's denial.
	outcome, err := d.ExecuteLine(&testutil.Sender{}, "cfg set page_size 5")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeHelpDisplayed, outcome)

	outcome, err = d.ExecuteLine(&testutil.Sender{}, "history clear")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomePermissionDenied, outcome)

	sender := &testutil.Sender{Permissions: []string{PermConfig}}
	outcome, err = d.ExecuteLine(sender, "cfg set page_size 5")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)
}

func TestBuildTree_GroupWithoutSubCommandShowsHelp(t *testing.T) {
	_, d := buildTestTree(t)

	outcome, err := d.ExecuteLine(&testutil.Sender{}, "config")

	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeHelpDisplayed, outcome)
}

func TestBuildTree_HistoryClearBeforePage(t *testing.T) {
	application, d := buildTestTree(t)
	testutil.SeedHistory(t, application.History, "alice", "echo a", "echo b")
	sender := &testutil.Sender{Permissions: []string{PermHistory, PermAdmin}}

	outcome, err := d.ExecuteLine(sender, "history clear")

	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)
	require.Equal(t, []string{"removed 2 entries"}, sender.Messages)
}

func TestBuildTree_EchoNeedsWords(t *testing.T) {
	_, d := buildTestTree(t)
	sender := &testutil.Sender{}

	outcome, err := d.ExecuteLine(sender, "echo")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeHelpDisplayed, outcome)

	outcome, err = d.ExecuteLine(sender, "say a b c")
	require.NoError(t, err)
	require.Equal(t, dispatchers.OutcomeExecuted, outcome)
	require.Equal(t, []string{"a b c"}, sender.Messages)
}

func TestBuildTree_NotifyRunsOnDrain(t *testing.T) {
	_, d := buildTestTree(t)
	sender := &testutil.Sender{}

	_, err := d.ExecuteLine(sender, "notify done")
	require.NoError(t, err)
	require.Empty(t, sender.Messages)
	require.Equal(t, 1, d.Pending())

	require.NoError(t, d.Drain())
	require.Equal(t, []string{"notice: done"}, sender.Messages)
}

func TestBuildTree_HelpListsVisibleCommands(t *testing.T) {
	_, d := buildTestTree(t)
	sender := &testutil.Sender{}

	_, err := d.ExecuteLine(sender, "help")

	require.NoError(t, err)
	require.Equal(t, "Help (page 1/2)", sender.Messages[0])
	require.Equal(t, "help [page] - Shows the command list", sender.Messages[1])
	require.Len(t, sender.Messages, 11)
}
