package core

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/xyz-company/xyzsite/site"
)

func newTestShell(t *testing.T, liveReload bool) *Shell {
	t.Helper()

	content, err := LoadContent(site.FS)
	if err != nil {
		t.Fatalf("LoadContent failed: %v", err)
	}
	assets, err := LoadAssets(site.FS, false, NewMinifier())
	if err != nil {
		t.Fatalf("LoadAssets failed: %v", err)
	}
	shell, err := NewShell(site.FS, content, assets, liveReload)
	if err != nil {
		t.Fatalf("NewShell failed: %v", err)
	}
	shell.Now = func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) }
	return shell
}

func TestShell_RenderWrapsContent(t *testing.T) {
	shell := newTestShell(t, false)

	var buf bytes.Buffer
	if err := shell.Render(&buf, "Тест", template.HTML(`<p id="x">raw <b>markup</b></p>`)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	checks := []string{
		"<title>Тест | XYZ Company</title>",
		`<p id="x">raw <b>markup</b></p>`,
		"© Компания XYZ, 2031. Все права защищены.",
		`href="/static/site.css"`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if strings.Contains(out, LiveReloadPath) {
		t.Error("unexpected live reload script")
	}
}

func TestShell_NavigationOrder(t *testing.T) {
	shell := newTestShell(t, false)

	var buf bytes.Buffer
	shell.Render(&buf, "x", "")
	out := buf.String()

	last := -1
	for _, link := range shell.Nav() {
		idx := strings.Index(out, `<a href="`+link.Path+`">`+link.Label+`</a>`)
		if idx < 0 {
			t.Fatalf("nav link %s missing", link.Path)
		}
		if idx < last {
			t.Errorf("nav link %s out of order", link.Path)
		}
		last = idx
	}
	if len(shell.Nav()) != 6 {
		t.Errorf("expected 6 nav links, got %d", len(shell.Nav()))
	}
}

func TestShell_LiveReloadScript(t *testing.T) {
	shell := newTestShell(t, true)

	var buf bytes.Buffer
	shell.Render(&buf, "x", "")
	if !strings.Contains(buf.String(), LiveReloadPath) {
		t.Error("expected live reload script")
	}
}

func TestShell_NavIsCopy(t *testing.T) {
	shell := newTestShell(t, false)
	nav := shell.Nav()
	nav[0].Label = "changed"
	if shell.Nav()[0].Label == "changed" {
		t.Error("Nav must return a copy")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestShell_RenderWriterError(t *testing.T) {
	shell := newTestShell(t, false)
	if err := shell.Render(failingWriter{}, "x", ""); err == nil {
		t.Error("expected writer error to surface")
	}
}

func TestNewShell_MissingLayout(t *testing.T) {
	content := &Content{SiteName: "x"}
	assets := &Assets{files: map[string]*Asset{}}

	if _, err := NewShell(fstest.MapFS{}, content, assets, false); err == nil {
		t.Error("expected error for missing layout")
	}

	fsys := fstest.MapFS{LayoutFile: {Data: []byte(`{{ define "other" }}{{ end }}`)}}
	if _, err := NewShell(fsys, content, assets, false); err == nil {
		t.Error("expected error when layout template is undefined")
	}
}
