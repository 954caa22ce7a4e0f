package xyzsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/xyz-company/xyzsite/core"
	"go.uber.org/zap"
)

type RuntimeConfig struct {
	Env          string
	Host         string
	Port         int
	ConfigPath   string
	EnableMinify bool
}

const immutableCache = "public, max-age=31536000, immutable"

var Exit = os.Exit

var ListenAndServe = func(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ResolveConfig layers the config file, .env, XYZ_* variables and the
// runtime flags, in that order of increasing precedence.
func ResolveConfig(cfg RuntimeConfig) (*core.Config, error) {
	if err := core.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := cfg.ConfigPath
	if path == "" {
		path = core.DefaultConfigFile
	}

	config := core.LoadConfig(path)
	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if cfg.Host != "" {
		config.Host = cfg.Host
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}
	if cfg.EnableMinify {
		config.MinifyHTML = true
	}

	return config, nil
}

var Start = func(cfg RuntimeConfig) {
	config, err := ResolveConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Invalid configuration:", err)
		Exit(1)
		return
	}

	logger, err := core.NewLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Failed to create logger:", err)
		Exit(1)
		return
	}
	defer logger.Sync()

	logger.Info("starting xyzsite", zap.String("env", cfg.Env))

	addr, handler, err := BuildServer(cfg, config, logger)
	if err != nil {
		logger.Error("failed to build server", zap.Error(err))
		Exit(1)
		return
	}

	logger.Info("listening", zap.String("addr", addr))
	if err := ListenAndServe(addr, handler); err != nil {
		logger.Error("server failed", zap.String("addr", addr), zap.Error(err))
		Exit(1)
	}
}

func BuildServer(cfg RuntimeConfig, config *core.Config, logger *zap.Logger) (string, http.Handler, error) {
	mux := http.NewServeMux()
	fsys := core.ContentFS(config)

	if cfg.Env == core.EnvDev {
		if err := setupDevStaticRoutes(mux, fsys); err != nil {
			return "", nil, err
		}

		reloader := core.NewLiveReloader()
		mux.HandleFunc(core.LiveReloadPath, reloader.Handler)

		router, err := core.NewRouter(*config, core.RuntimeContext{
			Env:         cfg.Env,
			EnableWatch: true,
			OnReload:    reloader.BroadcastReload,
			Logger:      logger,
		})
		if err != nil {
			return "", nil, err
		}
		mux.Handle("/", router)
	} else {
		assets, err := core.LoadAssets(fsys, true, core.NewMinifier())
		if err != nil {
			return "", nil, err
		}

		mux.HandleFunc(core.StaticPrefix, makeStaticHandler(assets))
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			serveAsset(w, r, assets, "robots.txt")
		})

		router, err := core.NewRouter(*config, core.RuntimeContext{
			Env:    cfg.Env,
			Logger: logger,
			Assets: assets,
		})
		if err != nil {
			return "", nil, err
		}
		mux.Handle("/", router)
	}

	return config.Addr(), core.WithRequestLogging(logger, mux), nil
}

func setupDevStaticRoutes(mux *http.ServeMux, fsys fs.FS) error {
	public, err := fs.Sub(fsys, core.PublicDir)
	if err != nil {
		return fmt.Errorf("open %s: %w", core.PublicDir, err)
	}

	fileServer := http.StripPrefix(core.StaticPrefix, http.FileServerFS(public))
	mux.Handle(core.StaticPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		fileServer.ServeHTTP(w, r)
	}))

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFileFS(w, r, public, "robots.txt")
	})

	return nil
}

func makeStaticHandler(assets *core.Assets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, core.StaticPrefix)
		if name == "" || strings.Contains(name, "..") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		serveAsset(w, r, assets, name)
	}
}

func serveAsset(w http.ResponseWriter, r *http.Request, assets *core.Assets, name string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	asset, ok := assets.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	body := asset.Body
	h := w.Header()
	h.Set("Content-Type", asset.ContentType)
	h.Set("Cache-Control", immutableCache)
	if asset.Gzipped != nil {
		h.Set("Vary", "Accept-Encoding")
		if acceptsGzip(r) {
			h.Set("Content-Encoding", "gzip")
			body = asset.Gzipped
		}
	}
	h.Set("Content-Length", fmt.Sprint(len(body)))

	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(body)
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
