package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ticketd/internal/ticket/models"
	"ticketd/pkg/platform/sentinel"
)

// Postgres persists tickets in a postgres table. The store owns its schema;
// call EnsureSchema once at startup.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the tickets table when missing. Validation that used
// to live in entity annotations is expressed as column constraints here.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS tickets (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL CHECK (char_length(name) > 0),
			created_at TIMESTAMPTZ NOT NULL,
			coord_x    BIGINT NOT NULL,
			coord_y    DOUBLE PRECISION NOT NULL,
			price      DOUBLE PRECISION NOT NULL,
			discount   DOUBLE PRECISION NOT NULL DEFAULT 0,
			number     BIGINT NOT NULL DEFAULT 0,
			comment    TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL CHECK (category IN ('ordinary', 'premium')),
			person_id  BIGINT,
			venue_id   BIGINT,
			event_id   BIGINT
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure tickets schema: %w", err)
	}
	return nil
}

const ticketColumns = `id, name, created_at, coord_x, coord_y, price, discount, number, comment, category, person_id, venue_id, event_id`

func (s *Postgres) Save(ctx context.Context, t *models.Ticket) (*models.Ticket, error) {
	if t.ID == 0 {
		return s.insert(ctx, t)
	}
	return s.replace(ctx, t)
}

func (s *Postgres) insert(ctx context.Context, t *models.Ticket) (*models.Ticket, error) {
	const query = `
		INSERT INTO tickets (name, created_at, coord_x, coord_y, price, discount, number, comment, category, person_id, venue_id, event_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	saved := *t
	err := s.db.QueryRowContext(ctx, query,
		t.Name, t.CreatedAt, t.Coordinates.X, t.Coordinates.Y,
		t.Price, t.Discount, t.Number, t.Comment, t.Category,
		t.PersonID, t.VenueID, t.EventID,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return &saved, nil
}

func (s *Postgres) replace(ctx context.Context, t *models.Ticket) (*models.Ticket, error) {
	const query = `
		UPDATE tickets
		SET name = $2, created_at = $3, coord_x = $4, coord_y = $5, price = $6,
		    discount = $7, number = $8, comment = $9, category = $10,
		    person_id = $11, venue_id = $12, event_id = $13
		WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query,
		t.ID, t.Name, t.CreatedAt, t.Coordinates.X, t.Coordinates.Y,
		t.Price, t.Discount, t.Number, t.Comment, t.Category,
		t.PersonID, t.VenueID, t.EventID,
	)
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	if affected == 0 {
		return nil, sentinel.ErrNotFound
	}
	saved := *t
	return &saved, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	return scanTicket(s.db.QueryRowContext(ctx, query, id))
}

func (s *Postgres) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ticket exists: %w", err)
	}
	return exists, nil
}

func (s *Postgres) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteByComment(ctx context.Context, comment string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE comment = $1`, comment)
	if err != nil {
		return 0, fmt.Errorf("delete tickets by comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete tickets by comment: %w", err)
	}
	return affected, nil
}

func (s *Postgres) FindFirstWithEvent(ctx context.Context) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE event_id IS NOT NULL ORDER BY event_id ASC, id ASC LIMIT 1`
	return scanTicket(s.db.QueryRowContext(ctx, query))
}

func (s *Postgres) CountCommentLessThan(ctx context.Context, comment string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE comment < $1`, comment).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tickets by comment: %w", err)
	}
	return count, nil
}

func (s *Postgres) FindAll(ctx context.Context) ([]models.Ticket, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		t, err := scanTicketRow(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row *sql.Row) (*models.Ticket, error) {
	t, err := scanTicketRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return t, err
}

func scanTicketRow(row rowScanner) (*models.Ticket, error) {
	var t models.Ticket
	var coords models.Coordinates
	err := row.Scan(
		&t.ID, &t.Name, &t.CreatedAt, &coords.X, &coords.Y,
		&t.Price, &t.Discount, &t.Number, &t.Comment, &t.Category,
		&t.PersonID, &t.VenueID, &t.EventID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	t.Coordinates = &coords
	return &t, nil
}
