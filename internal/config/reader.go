package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating an empty
// file when there is none.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// EnsureFile writes a commented default config when the file is missing or
// empty. It reports whether it wrote one.
func EnsureFile() (bool, error) {
	lines, err := ReadLines()
	if err != nil {
		return false, err
	}
	if len(lines) > 0 {
		return false, nil
	}
	return true, WriteLines(DefaultLines())
}

// DefaultLines renders every visible key with its default value.
func DefaultLines() []string {
	lines := []string{
		"# cmdtree configuration",
		"# Edit values below or use: config set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		value := key.Default

		// Quote values that contain spaces
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		// HideIfEmpty keys are commented out (optional overrides)
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
