package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/pollingapp/internal/core/domain"
	"github.com/vncsmyrnk/pollingapp/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// SaveVote relies on the (poll_id, user_id) unique constraint instead of a
// prior existence check, so two racing requests cannot both be stored.
func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO vote (poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, vote.PollID, vote.OptionID, vote.UserID, vote.CreatedAt).Scan(&vote.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}
