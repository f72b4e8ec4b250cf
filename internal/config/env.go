package config

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the environment overlay. Set variables take precedence over the
// config file.
type Env struct {
	PageSize    *int    `env:"CMDTREE_PAGE_SIZE"`
	LogLevel    string  `env:"CMDTREE_LOG_LEVEL"`
	NoColor     bool    `env:"CMDTREE_NO_COLOR"`
	Permissions *string `env:"CMDTREE_PERMISSIONS"`
	HelpFormat  string  `env:"CMDTREE_HELP_FORMAT"`
}

// LoadEnv loads the given dotenv files, skipping missing ones, and parses
// CMDTREE_* variables. Variables already in the environment are not
// overwritten by dotenv files.
func LoadEnv(dotenvFiles ...string) (Env, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}
	return env.ParseAs[Env]()
}

// Overrides maps the set variables onto config keys.
func (e Env) Overrides() map[string]string {
	out := make(map[string]string)
	if e.PageSize != nil {
		out["page_size"] = strconv.Itoa(*e.PageSize)
	}
	if e.LogLevel != "" {
		out["log_level"] = e.LogLevel
	}
	if e.Permissions != nil {
		out["permissions"] = *e.Permissions
	}
	if e.HelpFormat != "" {
		out["help_format"] = e.HelpFormat
	}
	return out
}
