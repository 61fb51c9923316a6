package dto

// CreateUniversityRequest creates a catalog entry (admin only)
type CreateUniversityRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
	Description string `json:"description"`
	Ranking     int    `json:"ranking"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateUniversityRequest is an admin partial update of a catalog entry
type UpdateUniversityRequest struct {
	Name        *string `json:"name,omitempty"`
	Country     *string `json:"country,omitempty"`
	City        *string `json:"city,omitempty"`
	Description *string `json:"description,omitempty"`
	Ranking     *int    `json:"ranking,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}
