package app

import (
	"strconv"

	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/ui"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// History options
	HistoryEnabled bool

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Overrides shadow config file values, usually from the environment.
	Overrides map[string]string
}

// DefaultOptions derives options from the configuration, with overrides
// applied on top.
func DefaultOptions(overrides map[string]string) Options {
	provider := config.NewProvider(overrides)
	logEnabled, _ := provider.Get("enable_log")
	logLevel, _ := provider.Get("log_level")
	historyEnabled, _ := provider.Get("enable_history")
	styleConfig, _ := provider.GetAll()

	return Options{
		LogEnabled:     logEnabled == "true",
		LogLevel:       log.ParseLevel(logLevel),
		HistoryEnabled: historyEnabled == "true",
		StyleEnabled:   true,
		StyleConfig:    styleConfig,
		Overrides:      overrides,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		// Fall back to NopLogger on error
		if l, err := log.New(paths.LogFilePath(), opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	var history domain.HistoryStore
	if opts.HistoryEnabled {
		s, err := store.New(store.DBPath())
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		history = s
	}

	provider := config.NewProvider(opts.Overrides)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(provider.Get))

	return &domain.Application{
		History: history,
		Config:  provider,
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  style.New(opts.StyleEnabled, opts.StyleConfig),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses no history, NopLogger, no pager and no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(nil),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// NewDispatcher builds a dispatcher configured from app's settings.
func NewDispatcher(app *domain.Application, listener dispatchers.Listener) *dispatchers.Dispatcher {
	pageSize := dispatchers.DefaultPageSize
	if value, ok := app.Config.Get("page_size"); ok {
		if n, err := strconv.Atoi(value); err == nil {
			pageSize = n
		} else {
			app.Logger.Warn("app: ignoring page_size %q: %v", value, err)
		}
	}

	prefer := true
	if value, ok := app.Config.Get("prefer_sub_commands"); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			prefer = b
		} else {
			app.Logger.Warn("app: ignoring prefer_sub_commands %q: %v", value, err)
		}
	}

	return dispatchers.New(listener,
		dispatchers.WithPageSize(pageSize),
		dispatchers.WithPreferSubCommands(prefer),
		dispatchers.WithLogger(app.Logger),
		dispatchers.WithAsync(),
	)
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
