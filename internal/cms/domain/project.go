package domain

import "time"

// Project is a research project listing. DisplayOrder is the ascending sort
// key used everywhere projects are listed.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	KeyAreas     string    `json:"key_areas"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"order"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectUpdate is a partial update: only non-nil fields are applied.
type ProjectUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	KeyAreas     *string `json:"key_areas"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"order"`
	IsPublished  *bool   `json:"is_published"`
}

// IsEmpty reports whether the update would change nothing.
func (u ProjectUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.KeyAreas == nil &&
		u.Icon == nil && u.DisplayOrder == nil && u.IsPublished == nil
}
