package core

import (
	"fmt"
	"io/fs"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tdewolff/minify/v2"
	"go.uber.org/zap"
)

type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type HandlerFunc func(s *Site, req *http.Request, params map[string]string) (Response, error)

type Route struct {
	Name       string
	Pattern    string
	URLPattern *regexp.Regexp
	ParamKeys  []string
	Handler    HandlerFunc
}

type RuntimeContext struct {
	Env         string
	EnableWatch bool
	OnReload    func()
	Logger      *zap.Logger
	Assets      *Assets
	Branches    *Registry
	Now         func() time.Time
}

type Router struct {
	config   Config
	env      string
	ctx      RuntimeContext
	fsys     fs.FS
	minifier *minify.M
	logger   *zap.Logger
	routes   []Route
	site     atomic.Pointer[Site]
	watcher  *Watcher
}

var NewRouter = func(config Config, ctx RuntimeContext) (http.Handler, error) {
	return New(config, ctx)
}

func New(config Config, ctx RuntimeContext) (*Router, error) {
	logger := ctx.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Router{
		config:   config,
		env:      ctx.Env,
		ctx:      ctx,
		fsys:     ContentFS(&config),
		minifier: NewMinifier(),
		logger:   logger,
		routes:   buildRoutes(),
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	if ctx.EnableWatch && config.ContentDir != "" {
		w, err := WatchDir(config.ContentDir, 100*time.Millisecond, r.onContentChange)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", config.ContentDir, err)
		}
		r.watcher = w
	}

	return r, nil
}

func buildRoutes() []Route {
	return []Route{
		route("home", "", handleHome),
		route("news", "news", handleNews),
		route("news", "news/[...path]", handleNews),
		route("management", "management", handleManagement),
		route("management", "management/[...path]", handleManagement),
		route("about", "about", handleAbout),
		route("about", "about/[...path]", handleAbout),
		route("contacts", "contacts", handleContacts),
		route("contacts", "contacts/[...path]", handleContacts),
		route("branches", "branches", handleBranches),
		route("branch", "branches/[city]", handleBranch),
		route("api-random", "api/random", handleRandom),
		route("api-user-agent", "api/user-agent", handleUserAgent),
	}
}

func route(name, pattern string, handler HandlerFunc) Route {
	re, keys := compilePattern(pattern)
	return Route{
		Name:       name,
		Pattern:    pattern,
		URLPattern: re,
		ParamKeys:  keys,
		Handler:    handler,
	}
}

// compilePattern turns "branches/[city]" into a single-segment capture and
// "news/[...path]" into a capture of the remaining path.
func compilePattern(pattern string) (*regexp.Regexp, []string) {
	paramKeys := []string{}
	regex := ""

	if pattern != "" {
		for _, part := range strings.Split(pattern, "/") {
			switch {
			case strings.HasPrefix(part, "[...") && strings.HasSuffix(part, "]"):
				paramKeys = append(paramKeys, part[4:len(part)-1])
				regex += "/(.*)"
			case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]"):
				paramKeys = append(paramKeys, part[1:len(part)-1])
				regex += "/([^/]+)"
			default:
				regex += "/" + regexp.QuoteMeta(part)
			}
		}
	}

	return regexp.MustCompile("^" + strings.TrimPrefix(regex, "/") + "$"), paramKeys
}

func (r *Router) match(urlPath string) (Route, map[string]string, bool) {
	path := strings.Trim(urlPath, "/")

	for _, route := range r.routes {
		if matches := route.URLPattern.FindStringSubmatch(path); matches != nil {
			params := make(map[string]string, len(route.ParamKeys))
			for i, key := range route.ParamKeys {
				params[key] = matches[i+1]
			}
			return route, params, true
		}
	}

	return Route{}, nil, false
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	site := r.site.Load()

	route, params, ok := r.match(req.URL.Path)
	if !ok {
		resp, err := renderNotFound(site)
		r.write(w, req, "not-found", resp, err)
		return
	}

	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	resp, err := route.Handler(site, req, params)
	r.write(w, req, route.Name, resp, err)
}

func (r *Router) write(w http.ResponseWriter, req *http.Request, name string, resp Response, err error) {
	if err == nil {
		resp, err = r.finish(resp)
	}
	if err != nil {
		r.logger.Error("render failed",
			zap.String("route", name),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", resp.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	if r.config.DebugHeaders {
		h.Set("X-Site-Route", name)
	}

	w.WriteHeader(resp.Status)
	if req.Method != http.MethodHead {
		w.Write(resp.Body)
	}
}

func (r *Router) finish(resp Response) (Response, error) {
	if !r.config.MinifyHTML || !strings.HasPrefix(resp.ContentType, "text/html") {
		return resp, nil
	}
	body, err := MinifyHTML(r.minifier, resp.Body)
	if err != nil {
		return Response{}, err
	}
	resp.Body = body
	return resp, nil
}

// Render resolves path as a GET request without a live connection.
func (r *Router) Render(path string) (Response, error) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Response{}, fmt.Errorf("render %s: %w", path, err)
	}

	site := r.site.Load()

	route, params, ok := r.match(req.URL.Path)
	if !ok {
		resp, err := renderNotFound(site)
		if err != nil {
			return Response{}, err
		}
		return r.finish(resp)
	}

	resp, err := route.Handler(site, req, params)
	if err != nil {
		return Response{}, err
	}
	return r.finish(resp)
}

// RenderNotFound renders the page served for unmatched paths.
func (r *Router) RenderNotFound() (Response, error) {
	resp, err := renderNotFound(r.site.Load())
	if err != nil {
		return Response{}, err
	}
	return r.finish(resp)
}

// Paths lists every concrete HTML page: parameterless routes and one detail
// page per branch.
func (r *Router) Paths() []string {
	paths := []string{}
	seen := map[string]bool{}

	for _, route := range r.routes {
		if len(route.ParamKeys) > 0 || strings.HasPrefix(route.Pattern, "api/") {
			continue
		}
		p := "/" + route.Pattern
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, city := range r.site.Load().Branches.Cities() {
		paths = append(paths, "/branches/"+city)
	}

	return paths
}

func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

func (r *Router) Site() *Site {
	return r.site.Load()
}

// Reload builds a fresh site snapshot and swaps it in. On error the current
// snapshot stays live.
func (r *Router) Reload() error {
	s, err := LoadSite(r.fsys, SiteOptions{
		Branches:   r.ctx.Branches,
		Assets:     r.ctx.Assets,
		Minifier:   r.minifier,
		Optimize:   r.env == EnvProd,
		LiveReload: r.env == EnvDev,
		Now:        r.ctx.Now,
	})
	if err != nil {
		return err
	}
	r.site.Store(s)
	return nil
}

func (r *Router) onContentChange() {
	if err := r.Reload(); err != nil {
		r.logger.Warn("content reload failed", zap.Error(err))
		return
	}
	r.logger.Info("content reloaded", zap.String("dir", r.config.ContentDir))
	if r.ctx.OnReload != nil {
		r.ctx.OnReload()
	}
}

func (r *Router) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
