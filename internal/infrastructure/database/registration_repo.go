package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

const registrationColumns = `id, event_id, user_id, status, joined_at, created_at, updated_at`

// RegistrationRepository implements output.RegistrationRepository on pgx.
type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.Registration) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO registrations (event_id, user_id, status, joined_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		int64(registration.EventID), int64(registration.UserID),
		registration.Status, registration.JoinedAt,
	)
	if err := row.Scan(&registration.ID, &registration.CreatedAt, &registration.UpdatedAt); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) FindByEventID(ctx context.Context, eventID uint) ([]entities.Registration, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = $1
		ORDER BY joined_at ASC, id ASC`,
		int64(eventID))
	if err != nil {
		return nil, fmt.Errorf("get registrations by event id: %w", err)
	}
	defer rows.Close()
	var out []entities.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return out, nil
}

func (r *RegistrationRepository) FindByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*entities.Registration, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = $1 AND user_id = $2`,
		int64(eventID), int64(userID))
	reg, err := scanRegistration(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get registration by event id and user id: %w", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) FindByEventIDAndStatus(ctx context.Context, eventID uint, status string) ([]entities.Registration, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+registrationColumns+` FROM registrations
		WHERE event_id = $1 AND status = $2
		ORDER BY joined_at ASC, id ASC`,
		int64(eventID), status)
	if err != nil {
		return nil, fmt.Errorf("get registrations by event id and status: %w", err)
	}
	defer rows.Close()
	var out []entities.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return out, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, registration *entities.Registration) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE registrations SET status = $2, updated_at = now() WHERE id = $1`,
		int64(registration.ID), registration.Status)
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, registration *entities.Registration) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM registrations WHERE id = $1`, int64(registration.ID))
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) CountByEventIDAndStatus(ctx context.Context, eventID uint, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		int64(eventID), status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}
