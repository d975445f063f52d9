package ports

import (
	"context"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote inserts the vote and returns domain.ErrAlreadyVoted when
	// the store already holds a vote for the same poll and user.
	SaveVote(ctx context.Context, vote *domain.Vote) error
}

type VoteInput struct {
	PollID      int64
	OptionIndex int
	UserID      int64
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Vote, error)
}
