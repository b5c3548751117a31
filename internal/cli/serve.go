package cli

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/hn770123/sum-puzzle1/internal/adapters/http"
	"github.com/hn770123/sum-puzzle1/internal/checker"
	"github.com/hn770123/sum-puzzle1/internal/generator"
	"github.com/hn770123/sum-puzzle1/internal/hint"
	"github.com/hn770123/sum-puzzle1/internal/solver"
	"github.com/hn770123/sum-puzzle1/internal/usecase"
	"github.com/hn770123/sum-puzzle1/web"
)

// NewServeCommand creates the web server command.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadServerConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.LogLevel
			} else {
				opts.LogLevel = cfg.LogLevel
			}
			logger := newLogger(opts)
			return runServer(cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")

	return cmd
}

func runServer(cfg ServerConfig, logger *slog.Logger) error {
	// Wire providers → use cases → HTTP adapter
	eng := generator.New(solver.NewPropagation())
	uc := usecase.NewService(eng, checker.New(), hint.NewForced())
	h := httpadapter.New(uc, logger)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := map[string]any{"Size": cfg.Size, "Blanks": cfg.Blanks}
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", data); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "size", cfg.Size, "blanks", cfg.Blanks)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}
