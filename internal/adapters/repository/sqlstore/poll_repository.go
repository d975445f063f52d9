package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

// Save inserts the poll together with any options it carries and fills in
// the generated ids.
func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO poll (title, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, queryPoll, poll.Title, poll.StartDate, poll.EndDate, poll.CreatedAt).Scan(&poll.ID)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO option (poll_id)
		VALUES ($1)
		RETURNING id
	`
	for i := range poll.Options {
		opt := &poll.Options[i]
		opt.PollID = poll.ID
		if err := tx.QueryRowContext(ctx, queryOption, poll.ID).Scan(&opt.ID); err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, start_date, end_date, created_at
		FROM poll
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.StartDate, &poll.EndDate, &poll.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID int64) ([]domain.Option, error) {
	queryOptions := `
		SELECT id, poll_id
		FROM option
		WHERE poll_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	options := []domain.Option{}
	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.PollID); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
