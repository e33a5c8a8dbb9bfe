package store

import (
	"context"
	"database/sql"
	"fmt"

	"ticketd/internal/directory/models"
)

// Postgres persists directory entities. A person's location is embedded as
// columns rather than a separate table, matching the coordinates layout on
// tickets.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the directory tables when missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS persons (
			id          BIGSERIAL PRIMARY KEY,
			eye_color   TEXT NOT NULL DEFAULT '',
			hair_color  TEXT NOT NULL DEFAULT '',
			loc_x       BIGINT NOT NULL,
			loc_y       DOUBLE PRECISION NOT NULL DEFAULT 0,
			loc_z       DOUBLE PRECISION NOT NULL,
			weight      DOUBLE PRECISION NOT NULL CHECK (weight > 0),
			passport_id TEXT NOT NULL CHECK (char_length(passport_id) > 0),
			nationality TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS venues (
			id       BIGSERIAL PRIMARY KEY,
			name     TEXT NOT NULL CHECK (char_length(name) > 0),
			capacity BIGINT NOT NULL CHECK (capacity > 0),
			type     TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS events (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL CHECK (char_length(name) > 0),
			tickets_count BIGINT NOT NULL CHECK (tickets_count > 0),
			event_type    TEXT NOT NULL DEFAULT ''
		)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure directory schema: %w", err)
	}
	return nil
}

func (s *Postgres) SavePerson(ctx context.Context, p *models.Person) (*models.Person, error) {
	const query = `
		INSERT INTO persons (eye_color, hair_color, loc_x, loc_y, loc_z, weight, passport_id, nationality)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	saved := *p
	loc := *p.Location
	saved.Location = &loc
	err := s.db.QueryRowContext(ctx, query,
		p.EyeColor, p.HairColor, loc.X, loc.Y, loc.Z,
		p.Weight, p.PassportID, p.Nationality,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return &saved, nil
}

func (s *Postgres) FindAllPersons(ctx context.Context) ([]models.Person, error) {
	const query = `SELECT id, eye_color, hair_color, loc_x, loc_y, loc_z, weight, passport_id, nationality FROM persons ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		var p models.Person
		var loc models.Location
		if err := rows.Scan(&p.ID, &p.EyeColor, &p.HairColor, &loc.X, &loc.Y, &loc.Z, &p.Weight, &p.PassportID, &p.Nationality); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p.Location = &loc
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

func (s *Postgres) PersonExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("person exists: %w", err)
	}
	return exists, nil
}

func (s *Postgres) SaveVenue(ctx context.Context, v *models.Venue) (*models.Venue, error) {
	saved := *v
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO venues (name, capacity, type) VALUES ($1, $2, $3) RETURNING id`,
		v.Name, v.Capacity, v.Type,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", err)
	}
	return &saved, nil
}

func (s *Postgres) FindAllVenues(ctx context.Context) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, capacity, type FROM venues ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.Type); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (s *Postgres) SaveEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	saved := *e
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO events (name, tickets_count, event_type) VALUES ($1, $2, $3) RETURNING id`,
		e.Name, e.TicketsCount, e.EventType,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return &saved, nil
}

func (s *Postgres) FindAllEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, tickets_count, event_type FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.TicketsCount, &e.EventType); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
