package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `id, uuid, title, description, max_participants, starts_at,
	status, reminder_sent, owner_id, published, created_at, updated_at`

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (uuid, title, description, max_participants, starts_at,
			status, reminder_sent, owner_id, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		event.UUID, event.Title, event.Description, event.MaxParticipants,
		event.StartsAt, event.Status, event.ReminderSent, event.OwnerID, event.Published,
	)
	if err := row.Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE uuid = $1`, id)
	event, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by uuid: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, int64(id))
	event, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE published AND status = $1 AND starts_at >= $2
		ORDER BY starts_at ASC`,
		domain.EventStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindNeedingReminder(ctx context.Context, windowStart, windowEnd time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE published AND status = $1 AND NOT reminder_sent
			AND starts_at >= $2 AND starts_at <= $3
		ORDER BY starts_at ASC`,
		domain.EventStatusActive, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("find events needing reminder: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindExpiredActive(ctx context.Context, now time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE published AND status = $1 AND starts_at < $2
		ORDER BY starts_at ASC`,
		domain.EventStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("find expired active events: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) MarkReminderSent(ctx context.Context, eventID uint) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE events SET reminder_sent = TRUE, updated_at = now() WHERE id = $1`,
		int64(eventID))
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, eventID uint, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE events SET status = $2, updated_at = now() WHERE id = $1`,
		int64(eventID), status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE events SET title = $2, description = $3, max_participants = $4,
			starts_at = $5, published = $6, updated_at = now()
		WHERE id = $1`,
		int64(event.ID), event.Title, event.Description, event.MaxParticipants,
		event.StartsAt, event.Published)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	defer rows.Close()
	var out []entities.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
