package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
	logger  *slog.Logger
}

func NewPollHandler(service ports.PollService, logger *slog.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		logger:  logger,
	}
}

type createPollRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type createPollResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Validates title and date range, then stores the poll.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Router       /create_poll [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := ports.CreatePollInput{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeMessage(w, http.StatusBadRequest, verr.Message)
			return
		}

		writeInternalError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPollResponse{
		Message: "Poll created successfully",
		ID:      poll.ID,
	})
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Poll not found")
		return
	}

	poll, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			writeMessage(w, http.StatusNotFound, "Poll not found")
			return
		}

		writeInternalError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}
