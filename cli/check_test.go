package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xyz-company/xyzsite/site"
)

// writeContent copies the built-in content into dir/content and points a
// config file at it.
func writeContent(t *testing.T, dir string) string {
	t.Helper()

	content := filepath.Join(dir, "content")
	if err := os.CopyFS(content, site.FS); err != nil {
		t.Fatalf("copy content: %v", err)
	}
	config := filepath.Join(dir, "site.config.yml")
	if err := os.WriteFile(config, []byte("contentDir: "+content+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return content
}

func TestCheckCommand_EmbeddedSite(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := runCommand(t, CheckCommand)
	if err != nil {
		t.Fatalf("expected no error, got %v\n%s", err, output)
	}

	for _, want := range []string{
		"✅ / (200)",
		"✅ /branches/London (200)",
		"✅ /branches/Atlantis (200)",
		"✅ /does-not-exist (404)",
		"All routes rendered successfully.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestCheckCommand_ExecError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := writeContent(t, dir)

	page := `{{ define "about" }}{{ template "no-such-partial" . }}{{ end }}`
	if err := os.WriteFile(filepath.Join(content, "pages", "about.html"), []byte(page), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := runCommand(t, CheckCommand)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(output, "❌ /about → render error") {
		t.Errorf("expected render error for /about, got:\n%s", output)
	}
	if !strings.Contains(output, "✅ /news (200)") {
		t.Errorf("expected other routes to pass, got:\n%s", output)
	}
}

func TestCheckCommand_LoadError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := writeContent(t, dir)

	os.Remove(filepath.Join(content, "pages", "branch.html"))

	output, err := runCommand(t, CheckCommand)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(output, "❌ failed to load site") {
		t.Errorf("expected load failure, got:\n%s", output)
	}
}
