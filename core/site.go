package core

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/tdewolff/minify/v2"
	"github.com/xyz-company/xyzsite/site"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Templates every content set has to define.
var requiredPages = []string{
	"home", "news", "management", "about", "contacts",
	"branches", "branch", "branch-not-found", "not-found",
}

type SiteOptions struct {
	Branches   *Registry
	Assets     *Assets
	Minifier   *minify.M
	Optimize   bool
	LiveReload bool
	Now        func() time.Time
}

// Site is one immutable snapshot of everything needed to render pages.
type Site struct {
	Content  *Content
	Branches *Registry
	Assets   *Assets
	Shell    *Shell
	pages    *template.Template
}

// PageData is the dot of every page template.
type PageData struct {
	Content     *Content
	Branches    []Branch
	BranchLinks []Link
	Branch      Branch
}

// ContentFS picks the on-disk content directory when configured, else the
// content embedded in the binary.
func ContentFS(cfg *Config) fs.FS {
	if cfg.ContentDir != "" {
		return os.DirFS(cfg.ContentDir)
	}
	return site.FS
}

func LoadSite(fsys fs.FS, opts SiteOptions) (*Site, error) {
	content, err := LoadContent(fsys)
	if err != nil {
		return nil, err
	}

	branches := opts.Branches
	if branches == nil {
		branches = DefaultRegistry()
	}

	assets := opts.Assets
	if assets == nil {
		m := opts.Minifier
		if m == nil {
			m = NewMinifier()
		}
		assets, err = LoadAssets(fsys, opts.Optimize, m)
		if err != nil {
			return nil, err
		}
	}

	shell, err := NewShell(fsys, content, assets, opts.LiveReload)
	if err != nil {
		return nil, err
	}
	if opts.Now != nil {
		shell.Now = opts.Now
	}

	pages, err := template.New("pages").Funcs(SiteTemplateFuncs(assets)).ParseFS(fsys, "partials/*.html", "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	for _, name := range requiredPages {
		if pages.Lookup(name) == nil {
			return nil, fmt.Errorf("parse page templates: missing %q", name)
		}
	}

	return &Site{
		Content:  content,
		Branches: branches,
		Assets:   assets,
		Shell:    shell,
		pages:    pages,
	}, nil
}

func (s *Site) pageData() PageData {
	return PageData{
		Content:     s.Content,
		Branches:    s.Branches.All(),
		BranchLinks: s.Branches.Links(),
	}
}

// RenderPage renders the named fragment and wraps it in the shell.
func (s *Site) RenderPage(w io.Writer, page, title string, data PageData) error {
	var fragment bytes.Buffer
	if err := s.pages.ExecuteTemplate(&fragment, page, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	if err := s.Shell.Render(w, title, template.HTML(fragment.String())); err != nil {
		return fmt.Errorf("render shell for %s: %w", page, err)
	}
	return nil
}
