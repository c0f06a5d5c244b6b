package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"books_scraper/config"
	"books_scraper/internal/transport/web"
	custommw "books_scraper/internal/transport/web/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg *config.Config
	srv *http.Server
}

func New(cfg *config.Config, ctrl *web.Controller) *Server {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer, custommw.Logger())

	r.Get("/", ctrl.Index)
	r.Get("/api/books", ctrl.ListBooks)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return &Server{cfg: cfg, srv: srv}
}

func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", slog.String("err", err.Error()))
			panic(err)
		}
	}()
	slog.Info("http server started!", slog.String("addr", s.srv.Addr))
}

func (s *Server) Stop() {
	slog.Info("start stopping http server")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown error", slog.String("err", err.Error()))
	}
	slog.Info("http server stopped")
}
