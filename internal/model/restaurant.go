package model

import "time"

// DayHours describes the opening windows for one weekday.  Lunch and Dinner
// hold human-readable ranges like "12h00-14h30"; both are empty when Closed.
type DayHours struct {
	Closed bool   `json:"closed,omitempty"`
	Lunch  string `json:"lunch,omitempty"`
	Dinner string `json:"dinner,omitempty"`
}

// Restaurant is the single restaurant profile.  Hours is keyed by lowercase
// weekday name and stored as a JSON column.
//
// Capacity is the restaurant's stated seat count as published on the site.
// The reservation capacity check does not read it: slot capacity is the
// fixed SlotCapacity ceiling.  Likewise the slot catalog ignores Hours.
// Both divergences are inherited behaviour; see DESIGN.md.
type Restaurant struct {
	ID        string              // restaurants.id
	Name      string              // restaurants.name
	Summary   string              // restaurants.summary
	Address   string              // restaurants.address
	Phone     string              // restaurants.phone
	Email     string              // restaurants.email
	Capacity  int                 // restaurants.capacity (stated seats)
	Hours     map[string]DayHours // restaurants.hours (JSON column)
	CreatedAt time.Time           // restaurants.created_at
	UpdatedAt time.Time           // restaurants.updated_at
}
