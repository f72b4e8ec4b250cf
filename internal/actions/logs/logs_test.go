package logs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/testutil"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func node(deps Deps) *dispatchers.Node {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:        "logs",
		Usage:       "Shows the log file",
		Identifiers: []string{"logs"},
		Args:        []dispatchers.ArgSpec{{Name: "page", Optional: true, Integer: true, Page: true}},
		Action:      View(deps),
	})
}

func depsWith(content string, err error) Deps {
	return Deps{
		LogFilePath: func() string { return "/tmp/cmdtree.log" },
		ReadFile: func(string) ([]byte, error) {
			return []byte(content), err
		},
		Styler: style.NopStyler{},
	}
}

func TestView_FileNotExists(t *testing.T) {
	out, err := testutil.Run(node(depsWith("", fs.ErrNotExist)), &testutil.Sender{})

	require.NoError(t, err)
	require.Equal(t, []string{"No log file found at /tmp/cmdtree.log"}, out)
}

func TestView_ReadError(t *testing.T) {
	_, err := testutil.Run(node(depsWith("", errors.New("denied"))), &testutil.Sender{})

	require.ErrorContains(t, err, "read log file")
}

func TestView_EmptyFile(t *testing.T) {
	out, err := testutil.Run(node(depsWith("\n", nil)), &testutil.Sender{})

	require.NoError(t, err)
	require.Equal(t, []string{"Log file is empty"}, out)
}

func TestView_NewestFirst(t *testing.T) {
	content := `{"level":"info","time":"2026-01-01T10:00:00Z","message":"first"}
not json
{"level":"warn","time":"2026-01-01T10:00:02Z","message":"third"}
`
	out, err := testutil.Run(node(depsWith(content, nil)), &testutil.Sender{})

	require.NoError(t, err)
	require.Equal(t, []string{
		"Logs (page 1/1)",
		"2026-01-01T10:00:02Z WARN third",
		"not json",
		"2026-01-01T10:00:00Z INFO first",
	}, out)
}

func TestView_InvalidPage(t *testing.T) {
	_, err := testutil.Run(node(depsWith("x\n", nil)), &testutil.Sender{}, "last")

	require.True(t, usage.Is(err, usage.ErrInvalidPage))
}
