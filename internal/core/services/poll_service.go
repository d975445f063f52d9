package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

// dateLayouts are tried in order; layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type pollService struct {
	repo ports.PollRepository
	now  func() time.Time
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "Title cannot be empty")
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return nil, domain.NewValidationError("title", "Title cannot be longer than 80 characters")
	}

	if strings.TrimSpace(input.StartDate) == "" {
		return nil, domain.NewValidationError("start_date", "Start date cannot be empty")
	}
	if strings.TrimSpace(input.EndDate) == "" {
		return nil, domain.NewValidationError("end_date", "End date cannot be empty")
	}

	start, ok := parseDate(input.StartDate)
	if !ok {
		return nil, domain.NewValidationError("start_date", "Invalid start date")
	}
	end, ok := parseDate(input.EndDate)
	if !ok {
		return nil, domain.NewValidationError("end_date", "Invalid end date")
	}

	if start.After(end) {
		return nil, domain.NewValidationError("start_date", "Start date cannot be greater than end date")
	}
	if start.Equal(end) {
		return nil, domain.NewValidationError("start_date", "Start date cannot be equal to end date")
	}

	poll := &domain.Poll{
		Title:     title,
		StartDate: start,
		EndDate:   end,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id int64) (*domain.Poll, error) {
	if id <= 0 {
		return nil, domain.ErrPollNotFound
	}

	return s.repo.GetByID(ctx, id)
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
