package models

import "time"

// EventSummary is the part of an event anyone holding its id may read.
type EventSummary struct {
	ID              ID        `json:"id"`
	Name            string    `json:"name"`
	BackgroundImage *string   `json:"background_image"`
	EventDate       time.Time `json:"event_date"`
	DrawDate        time.Time `json:"draw_date"`
	IsDrawn         bool      `json:"is_drawn"`
}

// EventListItem is one row of the public event listing.
type EventListItem struct {
	ID                ID        `json:"id"`
	Name              string    `json:"name"`
	BackgroundImage   *string   `json:"background_image"`
	EventDate         time.Time `json:"event_date"`
	ParticipantsCount int       `json:"participants_count"`
}

// CreateEventInput to create a new event
type CreateEventInput struct {
	Name            string    `json:"name" binding:"required,max=200"`
	EventDate       time.Time `json:"event_date" binding:"required"`
	DrawDate        time.Time `json:"draw_date" binding:"required"`
	BackgroundImage *string   `json:"background_image" binding:"omitempty,url"`
}
