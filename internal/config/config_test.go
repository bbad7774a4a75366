package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDir_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("JIRALINK_HOME", tmp)

	if got := Dir(); got != tmp {
		t.Errorf("Dir() = %q, want %q", got, tmp)
	}
	if got := FilePath(); got != filepath.Join(tmp, "settings.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv("JIRALINK_HOME", tmp)

	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if info, err := os.Stat(tmp); err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s to exist", tmp)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	v, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open on missing file: %v", err)
	}
	if v.GetString("local_issue_path") != "" {
		t.Error("expected empty value from missing file")
	}
}

func TestOpen_ReadsFileAndBoundEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "local_issue_path: issues\nmain_file_name: _Info\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := v.GetString("local_issue_path"); got != "issues" {
		t.Errorf("local_issue_path = %q, want issues", got)
	}
	if err := v.BindEnv("local_issue_path"); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JIRALINK_LOCAL_ISSUE_PATH", "from-env")
	t.Setenv("JIRALINK_MAIN_FILE_NAME", "from-env")
	if got := v.GetString("local_issue_path"); got != "from-env" {
		t.Errorf("bound env override = %q, want from-env", got)
	}
	if got := v.GetString("main_file_name"); got != "_Info" {
		t.Errorf("unbound key main_file_name = %q, want _Info", got)
	}
}

func TestOpen_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("instances: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
