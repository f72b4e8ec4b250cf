package help

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

var ErrNotInteractive = errors.New("help browser requires an interactive terminal")

//
// Public API
//

// Browser opens an interactive, paged view of the commands visible to the
// sender.
func Browser(deps Deps) dispatchers.ActionFunc {
	return func(sender dispatchers.Sender, call *dispatchers.CallContext) error {
		return browser(sender, call, deps)
	}
}

//
// Entrypoint
//

func browser(sender dispatchers.Sender, call *dispatchers.CallContext, deps Deps) error {
	lines := dispatchers.BuildLines(deps.Commands(), sender, deps.Format(), nil)
	if len(lines) == 0 {
		call.Reply("No commands available")
		return nil
	}
	if !deps.IsTerminal() {
		return ErrNotInteractive
	}

	return deps.Run(newModel(lines, deps.PageSize(), deps.Colors()))
}

//
// Model
//

type model struct {
	lines     []dispatchers.HelpLine
	pages     paginator.Model
	cursor    int
	cancelled bool
	colors    style.ColorConfig
}

func newModel(lines []dispatchers.HelpLine, perPage int, colors style.ColorConfig) model {
	if perPage <= 0 {
		perPage = len(lines)
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = perPage
	p.SetTotalPages(len(lines))

	return model{
		lines:  lines,
		pages:  p,
		colors: colors,
	}
}

// selected returns the line under the cursor.
func (m model) selected() dispatchers.HelpLine {
	start, _ := m.pages.GetSliceBounds(len(m.lines))
	return m.lines[start+m.cursor]
}

//
// Bubble Tea lifecycle
//

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case "home", "g":
			m.pages.Page = 0
			m.cursor = 0
			return m, nil
		case "end", "G":
			m.pages.Page = m.pages.TotalPages - 1
			m.cursor = m.pages.ItemsOnPage(len(m.lines)) - 1
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.pages, cmd = m.pages.Update(msg)
	m.clampCursor()
	return m, cmd
}

// moveCursor steps within the page and crosses onto the neighbouring page
// at either edge.
func (m *model) moveCursor(delta int) {
	next := m.cursor + delta
	switch {
	case next < 0:
		if m.pages.OnFirstPage() {
			return
		}
		m.pages.PrevPage()
		m.cursor = m.pages.ItemsOnPage(len(m.lines)) - 1
	case next >= m.pages.ItemsOnPage(len(m.lines)):
		if m.pages.OnLastPage() {
			return
		}
		m.pages.NextPage()
		m.cursor = 0
	default:
		m.cursor = next
	}
}

func (m *model) clampCursor() {
	if n := m.pages.ItemsOnPage(len(m.lines)); m.cursor >= n {
		m.cursor = n - 1
	}
}

//
// View
//

func (m model) View() string {
	colorize := func(color string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if color == "" {
			return s
		}
		if color == "bold" {
			return s.Bold(true)
		}
		return s.Foreground(lipgloss.Color(color))
	}
	active := colorize(m.colors.Active).Bold(true)
	muted := colorize(m.colors.Muted)
	header := colorize(m.colors.Header)

	var sb strings.Builder
	sb.WriteString(header.Render("Commands") + "\n\n")

	start, end := m.pages.GetSliceBounds(len(m.lines))
	for i, line := range m.lines[start:end] {
		if i == m.cursor {
			sb.WriteString(active.Render("> "+line.Text) + "\n")
			continue
		}
		sb.WriteString("  " + line.Text + "\n")
	}

	sb.WriteString("\n" + m.pages.View() + "\n\n")
	sb.WriteString(renderDetail(m.selected().Node, muted))
	sb.WriteString("\n" + muted.Render("↑/↓ move  ←/→ page  q quit") + "\n")
	return sb.String()
}

// renderDetail describes node's arguments and permissions.
func renderDetail(node *dispatchers.Node, muted lipgloss.Style) string {
	var sb strings.Builder
	if node.Description != "" {
		sb.WriteString(node.Description + "\n")
	}
	for _, arg := range node.Args {
		label := "required"
		if arg.Optional {
			label = "optional"
		}
		line := "  " + arg.Name + " (" + label + ")"
		if arg.Description != "" {
			line += " " + arg.Description
		}
		sb.WriteString(muted.Render(line) + "\n")
	}
	if len(node.Permissions) > 0 {
		joiner := " or "
		if node.NeedAllPermissions {
			joiner = " and "
		}
		sb.WriteString(muted.Render("  needs "+strings.Join(node.Permissions, joiner)) + "\n")
	}
	if len(node.Children) > 0 {
		sb.WriteString(muted.Render("  sub-commands: "+childNames(node)) + "\n")
	}
	return sb.String()
}

func childNames(node *dispatchers.Node) string {
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.PrimaryIdentifier())
	}
	return strings.Join(names, ", ")
}
