package logs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// entry is one JSON line written by the file logger.
type entry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// View shows one page of the log file, newest entries first.
func View(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return view(call, deps)
	}
}

func view(call *dispatchers.CallContext, deps Deps) error {
	logPath := deps.LogFilePath()

	content, err := deps.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		call.Reply("%s", deps.Styler.Muted("No log file found at "+logPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		call.Reply("%s", deps.Styler.Muted("Log file is empty"))
		return nil
	}
	slices.Reverse(lines)

	page := call.Page(len(lines))
	if page == dispatchers.PageParseFailed {
		token, _ := call.PageToken()
		return usage.InvalidPage(token)
	}
	start, end := dispatchers.PageBounds(page, len(lines), call.PageSize())

	pages := max(1, dispatchers.PageCount(len(lines), call.PageSize()))
	call.Reply("%s", deps.Styler.Header(fmt.Sprintf("Logs (page %d/%d)", page+1, pages)))
	for _, line := range lines[start:end] {
		call.Reply("%s", colorizeLogLine(line, deps.Styler))
	}
	return nil
}

// colorizeLogLine renders a JSON log line as "time LEVEL message". Lines
// that are not JSON are shown as they are.
func colorizeLogLine(line string, styler domain.Styler) string {
	var e entry
	if err := json.Unmarshal([]byte(line), &e); err != nil || e.Level == "" {
		return line
	}

	level := strings.ToUpper(e.Level)
	switch e.Level {
	case "error", "fatal", "panic":
		level = styler.Error(level)
	case "warn":
		level = styler.Warning(level)
	case "info":
		level = styler.Info(level)
	default:
		level = styler.Muted(level)
	}
	return fmt.Sprintf("%s %s %s", styler.Muted(e.Time), level, e.Message)
}
