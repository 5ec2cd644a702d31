package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateUserConfig points the user config dir at a fresh temp dir so a
// developer's real config cannot leak into tests.
func isolateUserConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolateUserConfig(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseBranch != DefaultBaseBranch {
		t.Fatalf("expected base branch %q, got %q", DefaultBaseBranch, cfg.BaseBranch)
	}
	if cfg.Remote != DefaultRemote {
		t.Fatalf("expected remote %q, got %q", DefaultRemote, cfg.Remote)
	}
	if cfg.ExportFormat != DefaultExportFormat {
		t.Fatalf("expected export format %q, got %q", DefaultExportFormat, cfg.ExportFormat)
	}
}

func TestLoadProjectFile(t *testing.T) {
	isolateUserConfig(t)
	root := t.TempDir()
	dir := BoardDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "base_branch = \"develop\"\nremote = \"upstream\"\nauthor = \"alice\"\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseBranch != "develop" || cfg.Remote != "upstream" || cfg.Author != "alice" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestProjectFileOverridesUserFile(t *testing.T) {
	userDir := isolateUserConfig(t)
	userFile := filepath.Join(userDir, BoardDirName, ConfigFileName)
	if err := os.MkdirAll(filepath.Dir(userFile), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	userContent := "author = \"alice\"\nexport_format = \"markdown\"\n"
	if err := os.WriteFile(userFile, []byte(userContent), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	root := t.TempDir()
	dir := BoardDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("author = \"bob\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Author != "bob" {
		t.Fatalf("expected project author to win, got %q", cfg.Author)
	}
	if cfg.ExportFormat != "markdown" {
		t.Fatalf("expected user export format to survive, got %q", cfg.ExportFormat)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolateUserConfig(t)
	root := t.TempDir()
	dir := BoardDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("base_branch = \"develop\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(baseBranchEnvKey, "release")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseBranch != "release" {
		t.Fatalf("expected env override, got %q", cfg.BaseBranch)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolateUserConfig(t)
	root := t.TempDir()
	dir := BoardDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("base_branch = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGitHubToken(t *testing.T) {
	t.Setenv(githubTokenEnvKey, "  tok123  ")
	if got := GitHubToken(); got != "tok123" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
	t.Setenv(githubTokenEnvKey, "")
	if got := GitHubToken(); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}
