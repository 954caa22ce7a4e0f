package core

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
)

const (
	PublicDir    = "public"
	StaticPrefix = "/static/"
)

type Asset struct {
	Name        string
	ContentType string
	Body        []byte
	Gzipped     []byte
	Version     string
}

// Assets is an in-memory snapshot of the public/ directory.
type Assets struct {
	versioned bool
	files     map[string]*Asset
}

func NewMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &minhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)
	return m
}

func MinifyHTML(m *minify.M, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Minify("text/html", &buf, bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("minify html: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadAssets reads every file under public/ in fsys. With optimize set, CSS
// and JS are minified, a gzip copy is kept, and URLs carry a content hash.
func LoadAssets(fsys fs.FS, optimize bool, m *minify.M) (*Assets, error) {
	a := &Assets{versioned: optimize, files: map[string]*Asset{}}

	err := fs.WalkDir(fsys, PublicDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimPrefix(p, PublicDir+"/")
		asset := &Asset{Name: name, ContentType: DetectMimeType(name)}

		if optimize {
			body = minifyAsset(m, name, body)
			gz, err := gzipBytes(body)
			if err != nil {
				return fmt.Errorf("gzip %s: %w", name, err)
			}
			asset.Gzipped = gz
		}

		asset.Body = body
		asset.Version = contentHash(body)
		a.files[name] = asset
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	return a, nil
}

func minifyAsset(m *minify.M, name string, body []byte) []byte {
	var mediatype string
	switch path.Ext(name) {
	case ".css":
		mediatype = "text/css"
	case ".js":
		mediatype = "application/javascript"
	default:
		return body
	}

	if strings.Contains(name, ".min.") {
		return body
	}

	var buf bytes.Buffer
	if err := m.Minify(mediatype, &buf, bytes.NewReader(body)); err != nil {
		return body
	}
	return buf.Bytes()
}

func gzipBytes(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(body); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contentHash(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])[:6]
}

func (a *Assets) Get(name string) (*Asset, bool) {
	asset, ok := a.files[name]
	return asset, ok
}

func (a *Assets) Names() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// URL returns the public URL of an asset, versioned when optimized.
func (a *Assets) URL(name string) string {
	url := StaticPrefix + name
	if !a.versioned {
		return url
	}
	if asset, ok := a.files[name]; ok {
		return url + "?v=" + asset.Version
	}
	return url
}

func DetectMimeType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".ico":
		return "image/x-icon"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

func SiteTemplateFuncs(assets *Assets) template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["asset"] = func(name string) string {
		return assets.URL(name)
	}
	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}
	return funcs
}
