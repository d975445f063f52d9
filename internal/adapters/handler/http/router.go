package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, healthHandler *HealthHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "Welcome to the Polling App")
	})
	r.Get("/healthz", healthHandler.Check)

	r.Post("/create_poll", pollHandler.CreatePoll)
	r.Get("/polls/{poll_id}", pollHandler.GetPoll)

	r.Post("/vote/{poll_id}/{option_index}", voteHandler.VoteOnPoll)

	return r
}
