package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hchawla/pydocgen/internal/config"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
	return tmpDir
}

func TestInitCreatesDocgenTable(t *testing.T) {
	chdirTemp(t)

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init returned error: %v", err)
	}

	settings := config.SettingsFrom(config.LoadPyproject())
	if settings != config.DefaultSettings() {
		t.Errorf("settings after init = %+v, want defaults", settings)
	}
}

func TestInitAppendsToExistingFile(t *testing.T) {
	dir := chdirTemp(t)
	existing := "[project]\nname = \"demo\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.PyprojectFile), []byte(existing), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init returned error: %v", err)
	}

	content, err := os.ReadFile(config.PyprojectFile)
	if err != nil {
		t.Fatalf("read pyproject: %v", err)
	}
	if !strings.Contains(string(content), "[project]") {
		t.Error("existing content lost")
	}
	if !strings.Contains(string(content), "docgen") {
		t.Error("[tool.docgen] table not added")
	}
}

func TestInitRefusesWhenConfigured(t *testing.T) {
	dir := chdirTemp(t)
	existing := "[tool.docgen]\nstyle = \"NumPy\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.PyprojectFile), []byte(existing), 0644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("init overwrote an existing [tool.docgen] table")
	}
}
