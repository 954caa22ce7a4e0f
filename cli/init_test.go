package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xyz-company/xyzsite/core"
)

func TestInitCommand_WritesContentAndConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := runCommand(t, InitCommand)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, f := range []string{"layout.html", "content.yml", "pages/home.html", "partials/button.html", "public/site.css"} {
		if _, err := os.Stat(filepath.Join("content", f)); err != nil {
			t.Errorf("expected %s to be written: %v", f, err)
		}
	}

	config := core.LoadConfig("site.config.yml")
	if config.ContentDir != "content" {
		t.Errorf("expected config to point at content, got %q", config.ContentDir)
	}
	if !strings.Contains(output, "Content created successfully.") {
		t.Errorf("unexpected output:\n%s", output)
	}

	// The written copy must load as a site on its own.
	if _, err := core.New(*config, core.RuntimeContext{Env: core.EnvDev}); err != nil {
		t.Errorf("written content does not load: %v", err)
	}
}

func TestInitCommand_CustomDirKeepsConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	os.WriteFile("site.config.yml", []byte("port: 9000\n"), 0644)

	if _, err := runCommand(t, InitCommand, "mysite"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join("mysite", "content.yml")); err != nil {
		t.Errorf("expected mysite/content.yml: %v", err)
	}
	data, _ := os.ReadFile("site.config.yml")
	if string(data) != "port: 9000\n" {
		t.Errorf("existing config must not be touched, got %q", data)
	}
}

func TestInitCommand_RefusesNonEmptyDir(t *testing.T) {
	t.Chdir(t.TempDir())
	os.MkdirAll("content", 0755)
	os.WriteFile(filepath.Join("content", "keep.txt"), []byte("x"), 0644)

	if _, err := runCommand(t, InitCommand); err == nil {
		t.Fatal("expected error for non-empty directory")
	}

	if _, err := runCommand(t, InitCommand, "--force"); err != nil {
		t.Fatalf("expected --force to succeed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join("content", "content.yml")); err != nil {
		t.Errorf("expected content.yml after --force: %v", err)
	}
}
