package services

import (
	"context"
	"sync"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
)

type fakePollRepository struct {
	mu      sync.Mutex
	polls   map[int64]*domain.Poll
	nextID  int64
	saveErr error
}

func newFakePollRepository() *fakePollRepository {
	return &fakePollRepository{polls: make(map[int64]*domain.Poll)}
}

func (r *fakePollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	poll.ID = r.nextID
	stored := *poll
	r.polls[poll.ID] = &stored
	return nil
}

func (r *fakePollRepository) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return poll, nil
}

func (r *fakePollRepository) addOptions(pollID int64, ids ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.polls[pollID].Options = append(r.polls[pollID].Options, domain.Option{ID: id, PollID: pollID})
	}
}

type voteKey struct {
	pollID int64
	userID int64
}

type fakeVoteRepository struct {
	mu    sync.Mutex
	votes map[voteKey]*domain.Vote
}

func newFakeVoteRepository() *fakeVoteRepository {
	return &fakeVoteRepository{votes: make(map[voteKey]*domain.Vote)}
}

func (r *fakeVoteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey{vote.PollID, vote.UserID}
	if _, ok := r.votes[key]; ok {
		return domain.ErrAlreadyVoted
	}
	vote.ID = int64(len(r.votes) + 1)
	r.votes[key] = vote
	return nil
}
