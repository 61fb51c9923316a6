package domain

import "time"

// University is a catalog entry on the content side of the site
type University struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Description string    `json:"description,omitempty"`
	Ranking     int       `json:"ranking,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
