package config

import (
	"maps"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Provider wraps configuration operations and implements
// domain.ConfigProvider. Overrides shadow file and default values for reads.
type Provider struct {
	overrides map[string]string
}

// NewProvider creates a provider with optional read overrides, usually
// Env.Overrides().
func NewProvider(overrides map[string]string) *Provider {
	return &Provider{overrides: maps.Clone(overrides)}
}

func (p *Provider) Get(key string) (string, bool) {
	if value, ok := p.overrides[key]; ok {
		return value, true
	}
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	all, err := GetAll()
	if err != nil {
		return nil, err
	}
	maps.Copy(all, p.overrides)
	return all, nil
}

// Set writes a known key to the config file under the file lock.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes a key from the config file so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
