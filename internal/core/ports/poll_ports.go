package ports

import (
	"context"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id int64) (*domain.Poll, error)
}

// CreatePollInput carries the raw payload fields; dates are parsed by
// the service.
type CreatePollInput struct {
	Title     string
	StartDate string
	EndDate   string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id int64) (*domain.Poll, error)
}
