// Package models holds the directory entities tickets reference: persons,
// venues and events. Their lifecycle is managed here; the ticket domain only
// reads them by identifier.
package models

import (
	"strings"

	"ticketd/pkg/derrors"
)

// Location is embedded in a person. X and Z are required.
type Location struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Person struct {
	ID          int64     `json:"id"`
	EyeColor    string    `json:"eyeColor,omitempty"`
	HairColor   string    `json:"hairColor"`
	Location    *Location `json:"location"`
	Weight      float64   `json:"weight"`
	PassportID  string    `json:"passportID"`
	Nationality string    `json:"nationality,omitempty"`
}

func (p *Person) Validate() error {
	if p.Weight <= 0 {
		return derrors.New(derrors.CodeBadRequest, "person weight must be positive")
	}
	if strings.TrimSpace(p.PassportID) == "" {
		return derrors.New(derrors.CodeBadRequest, "person passport id is required")
	}
	if p.Location == nil {
		return derrors.New(derrors.CodeBadRequest, "person location is required")
	}
	return nil
}

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int64  `json:"capacity"`
	Type     string `json:"type,omitempty"`
}

func (v *Venue) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return derrors.New(derrors.CodeBadRequest, "venue name must not be empty")
	}
	if v.Capacity <= 0 {
		return derrors.New(derrors.CodeBadRequest, "venue capacity must be positive")
	}
	return nil
}

type Event struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TicketsCount int64  `json:"ticketsCount"`
	EventType    string `json:"eventType,omitempty"`
}

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return derrors.New(derrors.CodeBadRequest, "event name must not be empty")
	}
	if e.TicketsCount <= 0 {
		return derrors.New(derrors.CodeBadRequest, "event tickets count must be positive")
	}
	return nil
}
