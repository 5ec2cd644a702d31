package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// BoardDirName is the repository-local hidden directory holding the
	// board database and project config.
	BoardDirName = "projectboard"
	// DBFileName is the SQLite database file inside the board directory.
	DBFileName = "board.sqlite"
	// ConfigFileName is the optional project config file inside the
	// board directory.
	ConfigFileName = "config.toml"

	DefaultBaseBranch   = "main"
	DefaultRemote       = "origin"
	DefaultLogLevel     = "warn"
	DefaultExportFormat = "csv"

	githubTokenEnvKey = "GITHUB_TOKEN"
	baseBranchEnvKey  = "PB_BASE_BRANCH"
	remoteEnvKey      = "PB_REMOTE"
)

// Config defines runtime configuration for pb. The GitHub token is read
// from the environment on demand and never persisted.
type Config struct {
	BaseBranch   string `toml:"base_branch"`
	Remote       string `toml:"remote"`
	Author       string `toml:"author"`
	LogLevel     string `toml:"log_level"`
	ExportFormat string `toml:"export_format"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		BaseBranch:   DefaultBaseBranch,
		Remote:       DefaultRemote,
		LogLevel:     DefaultLogLevel,
		ExportFormat: DefaultExportFormat,
	}
}

// BoardDir returns the hidden board directory for a repository root.
func BoardDir(repoRoot string) string {
	return filepath.Join(repoRoot, "."+BoardDirName)
}

// DBPath returns the database path for a repository root.
func DBPath(repoRoot string) string {
	return filepath.Join(BoardDir(repoRoot), DBFileName)
}

// UserConfigPath returns the user-scope config file, shared across
// repositories. Project config overrides it field by field.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BoardDirName, ConfigFileName), nil
}

// Load reads the user config file and then the project config file,
// each if present, and applies env overrides. Missing files are not
// errors; defaults apply.
func Load(repoRoot string) (*Config, error) {
	cfg := Default()

	if userPath, err := UserConfigPath(); err == nil {
		if err := decodeIfPresent(userPath, &cfg); err != nil {
			return nil, err
		}
	}
	if err := decodeIfPresent(filepath.Join(BoardDir(repoRoot), ConfigFileName), &cfg); err != nil {
		return nil, err
	}

	if value := strings.TrimSpace(os.Getenv(baseBranchEnvKey)); value != "" {
		cfg.BaseBranch = value
	}
	if value := strings.TrimSpace(os.Getenv(remoteEnvKey)); value != "" {
		cfg.Remote = value
	}

	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = DefaultExportFormat
	}

	return &cfg, nil
}

func decodeIfPresent(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// GitHubToken returns the review API token from the environment, or ""
// when none is configured. Absence degrades only submit/review.
func GitHubToken() string {
	return strings.TrimSpace(os.Getenv(githubTokenEnvKey))
}
