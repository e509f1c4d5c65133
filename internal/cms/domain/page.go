package domain

import "time"

// PageContent is one editable page of the site. The content field is a
// free-form document the frontend interprets; the backend only stores it.
// page_name is the lookup key (unique by convention, not enforced).
type PageContent struct {
	ID              string         `json:"id"`
	PageName        string         `json:"page_name"`
	Title           string         `json:"title"`
	Subtitle        *string        `json:"subtitle,omitempty"`
	Content         map[string]any `json:"content"`
	MetaDescription *string        `json:"meta_description,omitempty"`
	MetaKeywords    *string        `json:"meta_keywords,omitempty"`
	IsPublished     bool           `json:"is_published"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// PageContentUpdate is a partial update: only non-nil fields are applied.
type PageContentUpdate struct {
	Title           *string         `json:"title"`
	Subtitle        *string         `json:"subtitle"`
	Content         *map[string]any `json:"content"`
	MetaDescription *string         `json:"meta_description"`
	MetaKeywords    *string         `json:"meta_keywords"`
	IsPublished     *bool           `json:"is_published"`
}

// IsEmpty reports whether the update would change nothing.
func (u PageContentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Subtitle == nil && u.Content == nil &&
		u.MetaDescription == nil && u.MetaKeywords == nil && u.IsPublished == nil
}
