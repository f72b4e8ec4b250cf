package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Flags are the process-level options. Everything after the flags is one
// command line.
type Flags struct {
	Line     string
	NoPager  bool
	Pager    string
	NoColor  bool
	LogLevel string
	User     string
	Version  bool
	Help     bool
}

// Interactive reports whether no command line was given.
func (f Flags) Interactive() bool {
	return f.Line == ""
}

// NewFlagSet declares the process flags on a fresh set bound to f.
func NewFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cmdtree", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)

	fs.StringVarP(&f.Line, "command", "c", "", "run one command line and exit")
	fs.BoolVar(&f.NoPager, "no-pager", false, "do not use a pager for output")
	fs.StringVar(&f.Pager, "pager", "", "use the given pager command")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&f.LogLevel, "log-level", "", "override log_level (debug, info, warn, error)")
	fs.StringVarP(&f.User, "user", "u", "", "name recorded as the sender")
	fs.BoolVarP(&f.Version, "version", "v", false, "print the version and exit")
	fs.BoolVarP(&f.Help, "help", "h", false, "show usage")
	return fs
}

// ParseFlags parses args. Remaining words form the command line unless -c
// was given.
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	fs := NewFlagSet(&f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return f, usage.InvalidFlag(flagName(err))
	}

	if f.Line == "" {
		f.Line = strings.Join(fs.Args(), " ")
	}
	return f, nil
}

// Usage renders the flag help text.
func Usage() string {
	var f Flags
	return "usage: cmdtree [flags] [command line]\n\n" + NewFlagSet(&f).FlagUsages()
}

// flagName pulls the offending flag out of a pflag error message.
func flagName(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return strings.TrimSpace(msg[i+2:])
	}
	return msg
}
