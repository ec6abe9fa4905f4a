// Package api exposes the HTTP mirror of the bot: a random dog image proxy
// and the bot's aggregate stats as JSON.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"infobot/internal/dogapi"
	"infobot/internal/stats"
	"infobot/pkg/util"
)

// StatsProvider is what the server needs from the running bot.
type StatsProvider interface {
	Ready() bool
	Stats() stats.Snapshot
}

// DogFetcher is the upstream image source.
type DogFetcher interface {
	Random(ctx context.Context) (dogapi.Image, error)
}

type Server struct {
	bot  StatsProvider
	dogs DogFetcher
	log  *zap.Logger
}

func New(bot StatsProvider, dogs DogFetcher, log *zap.Logger) *Server {
	return &Server{bot: bot, dogs: dogs, log: log}
}

// Router mounts all routes. Split out from Run so tests can drive the
// handlers without a listener.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/api/dog", s.handleDog).Methods(http.MethodGet)
	router.HandleFunc("/api/bot/stats", s.handleStats).Methods(http.MethodGet)
	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully. A server
// error is logged, never fatal to the process.
func (s *Server) Run(ctx context.Context, port string) {
	srv := &http.Server{Addr: ":" + port, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("API server listening", zap.String("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.log.Error("API server exited", zap.Error(err))
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Discord Bot API",
		"endpoints": map[string]string{
			"/api/dog":       "Get random dog image",
			"/api/bot/stats": "Get bot statistics",
		},
	})
}

func (s *Server) handleDog(w http.ResponseWriter, r *http.Request) {
	image, err := s.dogs.Random(r.Context())
	if err != nil {
		s.log.Warn("dog image fetch failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch dog image",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   image.URL,
		"breed":   image.Breed,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	if !s.bot.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"success": false,
			"error":   "Bot is not ready",
		})
		return
	}

	snap := s.bot.Stats()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats": map[string]any{
			"guilds":   snap.Guilds,
			"users":    snap.Users,
			"channels": snap.Channels,
			"uptime":   util.FormatDuration(snap.UptimeSeconds()),
			"ping":     snap.LatencyMillis(),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
