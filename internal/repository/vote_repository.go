package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"voting-be/internal/domain"
	"voting-be/pkg/database"
	apperrors "voting-be/pkg/errors"
)

type PostgresVoteRepository struct {
	db *database.PostgresDB
}

func NewVoteRepository(db *database.PostgresDB) *PostgresVoteRepository {
	return &PostgresVoteRepository{db: db}
}

// DistinctNames returns the distinct option names voted so far
func (r *PostgresVoteRepository) DistinctNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT DISTINCT name FROM votes`)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate names: %w", err)
	}

	return names, nil
}

// GetByUser gets a user's vote. A malformed user id is treated the
// same as a user who has not voted.
func (r *PostgresVoteRepository) GetByUser(ctx context.Context, userID string) (*domain.Vote, error) {
	id, err := uuid.FromString(userID)
	if err != nil {
		return nil, nil
	}

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM votes
		WHERE user_id = $1
	`

	var vote domain.Vote
	err = r.db.Pool.QueryRow(ctx, query, id).Scan(
		&vote.ID,
		&vote.UserID,
		&vote.Name,
		&vote.CreatedAt,
		&vote.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &vote, nil
}

// Summary aggregates votes grouped by option name, ordered by count
// descending with ties broken by name ascending.
func (r *PostgresVoteRepository) Summary(ctx context.Context) (*domain.VoteSummary, error) {
	query := `
		SELECT name, COUNT(*) AS count
		FROM votes
		GROUP BY name
		ORDER BY count DESC, name ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote summary: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.VoteSummaryEntry, 0)
	total := 0
	for rows.Next() {
		var entry domain.VoteSummaryEntry
		if err := rows.Scan(&entry.Name, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary entry: %w", err)
		}
		total += entry.Count
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary: %w", err)
	}

	summary := &domain.VoteSummary{
		Count: total,
		List:  entries,
	}
	for i := range summary.List {
		summary.List[i].Percentage = float64(summary.List[i].Count) / float64(total) * 100
	}
	if len(entries) > 0 {
		summary.Winner = &entries[0].Name
	}

	return summary, nil
}

// Upsert records or changes a user's vote. The unique index on user_id
// makes this atomic under concurrent calls: the first write creates the
// row, later writes update name and updated_at only, and the returned
// id is stable across re-votes.
func (r *PostgresVoteRepository) Upsert(ctx context.Context, userID, name string) (string, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return "", apperrors.NewInvalidArgumentError("invalid user id")
	}

	voteID, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate vote id: %w", err)
	}

	query := `
		INSERT INTO votes (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = now()
		RETURNING id
	`

	var id string
	if err := r.db.Pool.QueryRow(ctx, query, voteID, uid, name).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to upsert vote: %w", err)
	}

	return id, nil
}
