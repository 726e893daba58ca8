package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/bot"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. The server stops when the process context
// is cancelled (SIGINT/SIGTERM), draining in-flight requests first.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &http.Server{
		Addr:    c.Addr,
		Handler: NewServerHandler(deps.Bot, deps.Logger),
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewServerHandler returns the HTTP handler exposing the bot as a JSON API.
// The transport adapter (Telegram, Slack, a web widget) runs as a separate
// process and forwards its platform events here.
func NewServerHandler(b *bot.Bot, logger *slog.Logger) http.Handler {
	s := &server{bot: b, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/message", s.handleMessage)
	mux.HandleFunc("POST /v1/selection", s.handleSelection)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

type server struct {
	bot    *bot.Bot
	logger *slog.Logger
}

func (s *server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var ev docbot.MessageEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid message event")
		return
	}

	reply, err := s.bot.HandleMessage(r.Context(), ev)
	if err != nil {
		s.logger.Error("message handling failed", "user_id", ev.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *server) handleSelection(w http.ResponseWriter, r *http.Request) {
	var ev docbot.SelectionEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid selection event")
		return
	}

	reply, err := s.bot.HandleSelection(r.Context(), ev)
	if err != nil {
		s.logger.Error("selection handling failed", "user_id", ev.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
