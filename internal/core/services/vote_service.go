package services

import (
	"context"
	"time"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
	now      func() time.Time
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		now:      time.Now,
	}
}

// Vote records the user's choice. Uniqueness per (poll, user) is left to
// the repository so concurrent duplicates cannot both succeed.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	if input.PollID <= 0 {
		return nil, domain.ErrPollNotFound
	}

	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	option, ok := poll.OptionAt(input.OptionIndex)
	if !ok {
		return nil, domain.ErrInvalidOption
	}

	vote := &domain.Vote{
		PollID:    poll.ID,
		OptionID:  option.ID,
		UserID:    input.UserID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}
