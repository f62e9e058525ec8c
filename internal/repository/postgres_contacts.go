package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"weup-connect/internal/domain"
)

// PostgresContactsRepo ContactsRepo backed by the contacts table.
type PostgresContactsRepo struct {
	db *sql.DB
}

func NewPostgresContactsRepo(db *sql.DB) *PostgresContactsRepo {
	return &PostgresContactsRepo{db: db}
}

var _ ContactsRepo = (*PostgresContactsRepo)(nil)

const contactColumns = `
	contact_id::text,
	user_id::text,
	contact_name,
	role,
	phone,
	COALESCE(email, ''),
	is_primary,
	last_contact,
	COALESCE(goal_tag, ''),
	COALESCE(frequency, ''),
	COALESCE(tags, '[]'::jsonb),
	COALESCE(origin_note, ''),
	verified
`

func (r *PostgresContactsRepo) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at, contact_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

func (r *PostgresContactsRepo) CreateContact(ctx context.Context, contact *domain.Contact) error {
	return r.insertContact(ctx, r.db, contact)
}

func (r *PostgresContactsRepo) CreateContacts(ctx context.Context, contacts []domain.Contact) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for i := range contacts {
		if err := r.insertContact(ctx, tx, &contacts[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// execer lets insertContact run inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *PostgresContactsRepo) insertContact(ctx context.Context, ex execer, contact *domain.Contact) error {
	if contact.ContactID == "" || contact.UserID == "" {
		return fmt.Errorf("contact_id and user_id are required")
	}

	tagsJSON, err := json.Marshal(contact.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	_, err = ex.ExecContext(ctx, `
		INSERT INTO contacts (
			contact_id, user_id, contact_name, role, phone, email,
			is_primary, last_contact, goal_tag, frequency, tags,
			origin_note, verified
		) VALUES (
			$1, $2, $3, $4, $5, NULLIF($6, ''),
			$7, $8, NULLIF($9, ''), NULLIF($10, ''), $11,
			NULLIF($12, ''), $13
		)`,
		contact.ContactID, contact.UserID, contact.Name, contact.Role,
		contact.Phone, contact.Email, contact.IsPrimary,
		nullTime(contact.LastContact), contact.GoalTag, contact.Frequency,
		tagsJSON, contact.OriginNote, contact.Verified,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *PostgresContactsRepo) DeleteContact(ctx context.Context, userID, contactID string) (bool, error) {
	if userID == "" || contactID == "" {
		return false, nil
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE user_id = $1 AND contact_id = $2`,
		userID, contactID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PostgresContactsRepo) SetLifeline(ctx context.Context, userID, contactID string) error {
	if userID == "" || contactID == "" {
		return ErrContactNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	// Promote first so a missing id aborts before anyone is demoted.
	res, err := tx.ExecContext(ctx,
		`UPDATE contacts SET is_primary = TRUE WHERE user_id = $1 AND contact_id = $2`,
		userID, contactID,
	)
	if err != nil {
		return fmt.Errorf("failed to set lifeline: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContactNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE contacts SET is_primary = FALSE WHERE user_id = $1 AND contact_id <> $2 AND is_primary`,
		userID, contactID,
	)
	if err != nil {
		return fmt.Errorf("failed to demote previous lifeline: %w", err)
	}

	return tx.Commit()
}

func (r *PostgresContactsRepo) TouchLastContact(ctx context.Context, userID, contactID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET last_contact = $3 WHERE user_id = $1 AND contact_id = $2`,
		userID, contactID, at,
	)
	if err != nil {
		return fmt.Errorf("failed to touch last_contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContactNotFound
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*domain.Contact, error) {
	var c domain.Contact
	var lastContact sql.NullTime
	var tagsJSON []byte

	err := s.Scan(
		&c.ContactID,
		&c.UserID,
		&c.Name,
		&c.Role,
		&c.Phone,
		&c.Email,
		&c.IsPrimary,
		&lastContact,
		&c.GoalTag,
		&c.Frequency,
		&tagsJSON,
		&c.OriginNote,
		&c.Verified,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}

	if lastContact.Valid {
		t := lastContact.Time
		c.LastContact = &t
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &c.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
