package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"weup-connect/internal/domain"
)

// PostgresMenteesRepo MenteesRepo backed by the mentees table.
type PostgresMenteesRepo struct {
	db *sql.DB
}

func NewPostgresMenteesRepo(db *sql.DB) *PostgresMenteesRepo {
	return &PostgresMenteesRepo{db: db}
}

var _ MenteesRepo = (*PostgresMenteesRepo)(nil)

func (r *PostgresMenteesRepo) ListMentees(ctx context.Context, userID string) ([]domain.Mentee, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	query := `
		SELECT
			mentee_id::text,
			user_id::text,
			mentee_name,
			COALESCE(status, ''),
			resources_used,
			check_ins_missed,
			last_contact
		FROM mentees
		WHERE user_id = $1
		ORDER BY created_at, mentee_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentees: %w", err)
	}
	defer rows.Close()

	mentees := []domain.Mentee{}
	for rows.Next() {
		var m domain.Mentee
		var lastContact sql.NullTime
		err := rows.Scan(
			&m.MenteeID,
			&m.UserID,
			&m.Name,
			&m.Status,
			&m.ResourcesUsed,
			&m.CheckInsMissed,
			&lastContact,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mentee: %w", err)
		}
		if lastContact.Valid {
			t := lastContact.Time
			m.LastContact = &t
		}
		mentees = append(mentees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list mentees: %w", err)
	}

	return mentees, nil
}

func (r *PostgresMenteesRepo) CreateMentee(ctx context.Context, mentee *domain.Mentee) error {
	if mentee.MenteeID == "" || mentee.UserID == "" {
		return fmt.Errorf("mentee_id and user_id are required")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mentees (
			mentee_id, user_id, mentee_name, status,
			resources_used, check_ins_missed, last_contact
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`,
		mentee.MenteeID, mentee.UserID, mentee.Name, mentee.Status,
		mentee.ResourcesUsed, mentee.CheckInsMissed, nullTime(mentee.LastContact),
	)
	if err != nil {
		return fmt.Errorf("failed to create mentee: %w", err)
	}
	return nil
}

func (r *PostgresMenteesRepo) UpdateEngagement(ctx context.Context, userID, menteeID string, resourcesUsed, checkInsMissed int, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE mentees
		SET resources_used = $3, check_ins_missed = $4, status = NULLIF($5, '')
		WHERE user_id = $1 AND mentee_id = $2`,
		userID, menteeID, resourcesUsed, checkInsMissed, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update engagement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenteeNotFound
	}
	return nil
}

func (r *PostgresMenteesRepo) TouchLastContact(ctx context.Context, userID, menteeID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE mentees SET last_contact = $3 WHERE user_id = $1 AND mentee_id = $2`,
		userID, menteeID, at,
	)
	if err != nil {
		return fmt.Errorf("failed to touch last_contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenteeNotFound
	}
	return nil
}
