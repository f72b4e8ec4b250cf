package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/log"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestDefaultOptions(t *testing.T) {
	isolate(t)

	opts := DefaultOptions(nil)

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.True(t, opts.HistoryEnabled)
	require.Equal(t, log.LevelWarn, opts.LogLevel)
	require.Equal(t, "default", opts.StyleConfig["theme"])
}

func TestDefaultOptions_Overrides(t *testing.T) {
	isolate(t)

	opts := DefaultOptions(map[string]string{"log_level": "debug", "enable_history": "false"})

	require.Equal(t, log.LevelDebug, opts.LogLevel)
	require.False(t, opts.HistoryEnabled)
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.Nil(t, app.History)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	// Should not panic
	err := Close(app)
	require.NoError(t, err)
}

func TestNew_WithOptions(t *testing.T) {
	isolate(t)

	opts := Options{
		PagerDisabled:  true,
		PagerOverride:  "less",
		LogEnabled:     false,
		HistoryEnabled: true,
		StyleEnabled:   true,
		StyleConfig:    map[string]string{"theme": "ocean"},
	}

	app, err := New(opts)
	require.NoError(t, err)
	require.NotNil(t, app)

	defer func() { _ = Close(app) }()

	require.NotNil(t, app.History)
	require.NotNil(t, app.Config)
	require.IsType(t, log.NopLogger{}, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := isolate(t)

	app, err := New(Options{LogEnabled: true, LogLevel: log.LevelDebug})
	require.NoError(t, err)

	app.Logger.Info("hello")
	require.NoError(t, Close(app))

	_, err = os.Stat(filepath.Join(dir, "cmdtree", "cmdtree.log"))
	require.NoError(t, err)
}

func TestNewDispatcher_ReadsConfig(t *testing.T) {
	isolate(t)
	app := NewForTesting()

	d := NewDispatcher(app, nil)
	require.Equal(t, dispatchers.DefaultPageSize, d.PageSize())

	require.NoError(t, app.Config.Set("page_size", "3"))
	require.Equal(t, 3, NewDispatcher(app, nil).PageSize())
}

func TestNewDispatcher_IgnoresBadPageSize(t *testing.T) {
	isolate(t)
	app := NewForTesting()
	require.NoError(t, app.Config.Set("page_size", "lots"))

	require.Equal(t, dispatchers.DefaultPageSize, NewDispatcher(app, nil).PageSize())
}
