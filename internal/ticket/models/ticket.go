package models

import (
	"strings"
	"time"

	"ticketd/pkg/derrors"
)

// Category tags a ticket as ordinary or premium. Premium tickets are only
// ever produced by cloning: price doubled at clone time, no retroactive link
// to the source.
type Category string

const (
	CategoryOrdinary Category = "ordinary"
	CategoryPremium  Category = "premium"
)

// Coordinates is embedded in a ticket and owned exclusively by it. Y is
// required and never null in the schema.
type Coordinates struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// Ticket is the aggregate this service manages. Person, venue and event are
// non-owning references held by identifier; the entities themselves live in
// the directory.
type Ticket struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	CreatedAt   time.Time    `json:"creationDate"`
	Coordinates *Coordinates `json:"coordinates"`
	Price       float64      `json:"price"`
	Discount    float64      `json:"discount"`
	Number      int64        `json:"number"`
	Comment     string       `json:"comment"`
	Category    Category     `json:"category"`
	PersonID    *int64       `json:"personId,omitempty"`
	VenueID     *int64       `json:"venueId,omitempty"`
	EventID     *int64       `json:"eventId,omitempty"`
}

// Validate checks the creation preconditions. Validation lives here rather
// than in schema annotations so every write path runs the same checks.
func (t *Ticket) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return derrors.New(derrors.CodeBadRequest, "ticket name must not be empty")
	}
	if t.Coordinates == nil {
		return derrors.New(derrors.CodeBadRequest, "ticket coordinates are required")
	}
	switch t.Category {
	case CategoryOrdinary, CategoryPremium:
	case "":
		t.Category = CategoryOrdinary
	default:
		return derrors.New(derrors.CodeBadRequest, "unknown ticket category")
	}
	return nil
}

// ClonePremium deep-copies the ticket into a fresh premium variant: new
// identity, creation time reset to now, references carried over, coordinates
// duplicated into a new instance, price doubled.
func (t *Ticket) ClonePremium(now time.Time) *Ticket {
	copy := &Ticket{
		Name:      t.Name,
		CreatedAt: now,
		Price:     t.Price * 2,
		Discount:  t.Discount,
		Number:    t.Number,
		Comment:   t.Comment,
		Category:  CategoryPremium,
		PersonID:  t.PersonID,
		VenueID:   t.VenueID,
		EventID:   t.EventID,
	}
	if t.Coordinates != nil {
		c := *t.Coordinates
		copy.Coordinates = &c
	}
	return copy
}
