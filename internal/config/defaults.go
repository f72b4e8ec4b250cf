package config

import "github.com/footprint-tools/cmdtree/internal/domain"

// Defaults holds in-code default values (not persisted), one per
// registered configuration key.
var Defaults = func() map[string]string {
	m := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		m[key.Name] = key.Default
	}
	return m
}()

// fileValues reads and parses the config file. Any failure yields nil so
// callers fall back to defaults.
func fileValues() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if value, ok := fileValues()[key]; ok {
		return value, true
	}
	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}
	for key, value := range fileValues() {
		result[key] = value
	}
	return result, nil
}
