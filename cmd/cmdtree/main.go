package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/console"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := cli.ParseFlags(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return usage.ExitCode(err)
	}
	if flags.Help {
		_, _ = fmt.Fprint(stdout, cli.Usage())
		return 0
	}
	if flags.Version {
		_, _ = fmt.Fprintf(stdout, "cmdtree version %s\n", app.Version)
		return 0
	}

	if _, err := config.EnsureFile(); err != nil {
		_, _ = fmt.Fprintln(stderr, usage.FailedConfigPath(err).Error())
		return 1
	}

	env, err := config.LoadEnv(paths.EnvFilePath(), ".env")
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "cmdtree: environment: %v\n", err)
		return 1
	}
	overrides := env.Overrides()
	if flags.LogLevel != "" {
		overrides["log_level"] = flags.LogLevel
	}

	opts := app.DefaultOptions(overrides)
	opts.PagerDisabled = flags.NoPager
	opts.PagerOverride = flags.Pager
	opts.StyleEnabled = !flags.NoColor && !env.NoColor && isTerminal(stdout)

	application, err := app.New(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "cmdtree: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	listener := console.NewListener(application.Logger, application.Styler)
	d := app.NewDispatcher(application, listener)
	listener.Attach(d)
	if err := cli.BuildTree(application, d); err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return usage.ExitCode(err)
	}

	permissions, _ := application.Config.Get("permissions")
	sender := console.NewSender(senderName(flags.User), stdout, console.ParsePermissions(permissions))

	var sessionOpts []console.SessionOption
	if application.History != nil {
		sessionOpts = append(sessionOpts, console.WithHistory(application.History))
	}
	session := console.NewSession(d, sender, application.Logger, sessionOpts...)

	if flags.Interactive() {
		log.Debug("cmdtree: interactive session for %s", sender.Name())
		if err := session.Serve(ctx, stdin, stdout); err != nil && ctx.Err() == nil {
			_, _ = fmt.Fprintln(stderr, err.Error())
			return 1
		}
		return 0
	}

	outcome, err := session.Run(flags.Line)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return usage.ExitCode(err)
	}
	return exitCode(outcome)
}

// exitCode maps a dispatch outcome to the process status. Showing help is
// not a failure.
func exitCode(outcome dispatchers.Outcome) int {
	switch outcome {
	case dispatchers.OutcomeExecuted, dispatchers.OutcomeHelpDisplayed:
		return 0
	default:
		return 1
	}
}

func senderName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "console"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
