package reaction

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moviehub/pkg/model"
	"moviehub/pkg/reaction"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository applies reaction toggles. The reaction row and the movie
// counters are written inside one transaction so a crash or a concurrent
// request can never leave them inconsistent.
type Repository interface {
	Toggle(movieID, userID uuid.UUID, requested reaction.Kind) (model.ReactionCounters, error)
}

// repository implements the reaction repository
type repository struct {
	db *sql.DB
}

// NewRepository creates a new reaction repository
func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// Toggle locates (or creates) the user's reaction row for a movie, applies
// one state-machine transition, and adjusts the movie counters atomically.
// Requests from the same user on the same movie serialize on the row lock
// taken by SELECT ... FOR UPDATE; the counter update itself is a relative
// SET x = x + delta so concurrent distinct-user requests never lose updates.
func (r *repository) Toggle(movieID, userID uuid.UUID, requested reaction.Kind) (model.ReactionCounters, error) {
	counters, err := r.toggle(movieID, userID, requested)
	if err != nil && isUniqueViolation(err) {
		// two first-reactions raced on the insert; the loser re-runs against
		// the now-existing row
		return r.toggle(movieID, userID, requested)
	}
	return counters, err
}

func (r *repository) toggle(movieID, userID uuid.UUID, requested reaction.Kind) (model.ReactionCounters, error) {
	var counters model.ReactionCounters

	tx, err := r.db.Begin()
	if err != nil {
		return counters, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := currentState(tx, movieID, userID)
	if err != nil {
		return counters, err
	}

	result := reaction.Transition(current, requested)

	err = applyRowAction(tx, movieID, userID, requested, result.Action)
	if err != nil {
		return counters, err
	}

	query := `
		UPDATE movies
		SET like_count = like_count + $1, dislike_count = dislike_count + $2
		WHERE id = $3
		RETURNING like_count, dislike_count`

	err = tx.QueryRow(query, result.Delta.Like, result.Delta.Dislike, movieID).
		Scan(&counters.Like, &counters.Dislike)
	if err != nil {
		return counters, fmt.Errorf("failed to update counters: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return model.ReactionCounters{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return counters, nil
}

// currentState reads the user's stored reaction under a row lock
func currentState(tx *sql.Tx, movieID, userID uuid.UUID) (reaction.State, error) {
	query := `
		SELECT reaction
		FROM movie_reactions
		WHERE movie_id = $1 AND user_id = $2
		FOR UPDATE`

	var stored string
	err := tx.QueryRow(query, movieID, userID).Scan(&stored)
	if err != nil {
		if err == sql.ErrNoRows {
			return reaction.None, nil
		}
		return reaction.None, fmt.Errorf("failed to read reaction: %w", err)
	}

	return reaction.StateOf(reaction.Kind(stored)), nil
}

func applyRowAction(tx *sql.Tx, movieID, userID uuid.UUID, requested reaction.Kind, action reaction.Action) error {
	var err error
	switch action {
	case reaction.CreateRow:
		_, err = tx.Exec(`
			INSERT INTO movie_reactions (id, movie_id, user_id, reaction, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), movieID, userID, string(requested), time.Now())
	case reaction.UpdateRow:
		_, err = tx.Exec(`
			UPDATE movie_reactions
			SET reaction = $3
			WHERE movie_id = $1 AND user_id = $2`,
			movieID, userID, string(requested))
	case reaction.DeleteRow:
		_, err = tx.Exec(`
			DELETE FROM movie_reactions
			WHERE movie_id = $1 AND user_id = $2`,
			movieID, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to write reaction row: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
