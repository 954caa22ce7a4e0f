package core

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"
)

const (
	LayoutFile     = "layout.html"
	LiveReloadPath = "/__xyz_reload"
)

// Shell wraps page fragments in the common document: head, navigation,
// main slot and footer.
type Shell struct {
	layout     *template.Template
	siteName   string
	copyright  string
	nav        []Link
	social     []SocialLink
	stylesheet string
	liveReload bool

	// Now supplies the footer year.
	Now func() time.Time
}

type shellData struct {
	Title          string
	SiteName       string
	Copyright      string
	Nav            []Link
	Social         []SocialLink
	Stylesheet     string
	Content        template.HTML
	Year           int
	LiveReload     bool
	LiveReloadPath string
}

func NewShell(fsys fs.FS, content *Content, assets *Assets, liveReload bool) (*Shell, error) {
	layout, err := template.New(LayoutFile).Funcs(SiteTemplateFuncs(assets)).ParseFS(fsys, LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", LayoutFile, err)
	}
	if layout.Lookup("layout") == nil {
		return nil, fmt.Errorf("parse %s: no \"layout\" template defined", LayoutFile)
	}

	return &Shell{
		layout:     layout,
		siteName:   content.SiteName,
		copyright:  content.Copyright,
		nav:        append([]Link(nil), content.Nav...),
		social:     append([]SocialLink(nil), content.Social...),
		stylesheet: assets.URL("site.css"),
		liveReload: liveReload,
		Now:        time.Now,
	}, nil
}

// Render writes a complete HTML document. content is trusted server-authored
// markup and is embedded without escaping.
func (s *Shell) Render(w io.Writer, title string, content template.HTML) error {
	return s.layout.ExecuteTemplate(w, "layout", shellData{
		Title:          title,
		SiteName:       s.siteName,
		Copyright:      s.copyright,
		Nav:            s.nav,
		Social:         s.social,
		Stylesheet:     s.stylesheet,
		Content:        content,
		Year:           s.Now().Year(),
		LiveReload:     s.liveReload,
		LiveReloadPath: LiveReloadPath,
	})
}

func (s *Shell) Nav() []Link {
	return append([]Link(nil), s.nav...)
}
