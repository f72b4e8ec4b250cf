// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Styler implements domain.Styler with lipgloss styles built from a
// ColorConfig.
type Styler struct {
	enabled bool
	colors  ColorConfig

	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
	active  lipgloss.Style
}

// New creates a Styler. NO_COLOR and CMDTREE_NO_COLOR disable styling
// regardless of enable. cfg supplies theme and color overrides; nil uses
// the default theme.
func New(enable bool, cfg map[string]string) *Styler {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDTREE_NO_COLOR") != "" {
		enable = false
	}

	s := &Styler{enabled: enable}
	if !enable {
		return s
	}

	// Force ANSI256 so 0-255 values render even without TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	s.colors = LoadColorConfig(cfg)
	s.success = makeStyle(s.colors.Success)
	s.warning = makeStyle(s.colors.Warning)
	s.err = makeStyle(s.colors.Error)
	s.info = makeStyle(s.colors.Info)
	s.muted = makeStyle(s.colors.Muted)
	s.header = makeStyle(s.colors.Header)
	s.active = makeStyle(s.colors.Active).Bold(true)
	return s
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func (s *Styler) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s *Styler) Enabled() bool {
	return s.enabled
}

// Colors returns the resolved colors. It is empty when styling is disabled.
func (s *Styler) Colors() ColorConfig {
	return s.colors
}

func (s *Styler) Success(text string) string { return s.render(s.success, text) }
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styler) Error(text string) string   { return s.render(s.err, text) }
func (s *Styler) Info(text string) string    { return s.render(s.info, text) }
func (s *Styler) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styler) Header(text string) string  { return s.render(s.header, text) }

// Active styles the focused entry of interactive views.
func (s *Styler) Active(text string) string { return s.render(s.active, text) }

// NopStyler is a no-op styler that returns text unchanged.
// Useful for testing or when styling is disabled.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

// Verify Styler and NopStyler implement domain.Styler
var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
