package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *slog.Logger
}

func NewVoteHandler(service ports.VoteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

// VoteOnPoll godoc
// @Summary      Casts a vote
// @Description  Records the user's choice of the option at option_index. One vote per user per poll.
// @Tags         votes
// @Produce      json
// @Param        user_id  query  int  true  "Voter identifier"
// @Success      201
// @Failure      400
// @Failure      404
// @Router       /vote/{poll_id}/{option_index} [post]
func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.ParseInt(chi.URLParam(r, "poll_id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Poll not found")
		return
	}

	optionIndex, err := strconv.Atoi(chi.URLParam(r, "option_index"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid option index")
		return
	}

	rawUserID := r.URL.Query().Get("user_id")
	if rawUserID == "" {
		writeMessage(w, http.StatusBadRequest, "user_id is required")
		return
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	input := ports.VoteInput{
		PollID:      pollID,
		OptionIndex: optionIndex,
		UserID:      userID,
	}

	if _, err := h.service.Vote(r.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrPollNotFound):
			writeMessage(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, domain.ErrInvalidOption):
			writeMessage(w, http.StatusBadRequest, "Invalid option index")
		case errors.Is(err, domain.ErrAlreadyVoted):
			writeMessage(w, http.StatusBadRequest, "User has already voted in this poll")
		default:
			writeInternalError(w, r, h.logger, err)
		}
		return
	}

	writeMessage(w, http.StatusCreated, "Vote cast successfully")
}
