package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Active  string // selected entry in the help browser
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Active:  "13", // bright magenta
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
		Active:  "90", // dark magenta
	},
	"mono-dark": {
		Success: "15",
		Warning: "15",
		Error:   "15",
		Info:    "250",
		Muted:   "242",
		Header:  "bold",
		Active:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "232",
		Error:   "232",
		Info:    "238",
		Muted:   "245",
		Header:  "bold",
		Active:  "bold",
	},
	"ocean-dark": {
		Success: "43",  // sea green
		Warning: "222", // sand
		Error:   "203", // coral
		Info:    "75",  // sky blue
		Muted:   "67",  // steel blue
		Header:  "bold",
		Active:  "117", // light blue
	},
	"ocean-light": {
		Success: "30",  // teal
		Warning: "136", // dark sand
		Error:   "160", // red coral
		Info:    "25",  // deep blue
		Muted:   "67",  // steel blue
		Header:  "bold",
		Active:  "24", // navy
	},
}

// colorConfigKeys lists the config keys that override single colors.
var colorConfigKeys = []string{
	"color_success",
	"color_warning",
	"color_error",
	"color_info",
	"color_muted",
	"color_header",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CMDTREE_THEME, CMDTREE_COLOR_*)
// 2. Config value (theme, color_*)
// 3. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("CMDTREE_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for _, key := range colorConfigKeys {
		if envVal := os.Getenv("CMDTREE_" + strings.ToUpper(key)); envVal != "" {
			setColorField(&result, key, envVal)
			continue
		}
		if cfgVal := cfg[key]; cfgVal != "" {
			setColorField(&result, key, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, key, value string) {
	switch key {
	case "color_success":
		c.Success = value
	case "color_warning":
		c.Warning = value
	case "color_error":
		c.Error = value
	case "color_info":
		c.Info = value
	case "color_muted":
		c.Muted = value
	case "color_header":
		c.Header = value
	}
}
