package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "cmdtree"

// AppDataDir returns the application data directory for the log and the
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdtreerc"), nil
}

// EnvFilePath is the optional dotenv file read before CMDTREE_* variables
// are parsed.
func EnvFilePath() string {
	return filepath.Join(AppDataDir(), "cmdtree.env")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdtree.log")
}
