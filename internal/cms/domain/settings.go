package domain

import "time"

// SiteSettings is a singleton document: the store holds at most one row,
// auto-created with defaults on first read.
type SiteSettings struct {
	ID              string            `json:"id"`
	SiteName        string            `json:"site_name"`
	SiteDescription string            `json:"site_description"`
	ContactEmail    string            `json:"contact_email"`
	ContactPhone    string            `json:"contact_phone"`
	Address         string            `json:"address"`
	LogoURL         *string           `json:"logo_url,omitempty"`
	HeroImageURL    *string           `json:"hero_image_url,omitempty"`
	ThemeColors     map[string]string `json:"theme_colors"`
	SocialLinks     map[string]string `json:"social_links"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// SiteSettingsUpdate is a partial update: only non-nil fields are applied.
type SiteSettingsUpdate struct {
	SiteName        *string            `json:"site_name"`
	SiteDescription *string            `json:"site_description"`
	ContactEmail    *string            `json:"contact_email"`
	ContactPhone    *string            `json:"contact_phone"`
	Address         *string            `json:"address"`
	LogoURL         *string            `json:"logo_url"`
	HeroImageURL    *string            `json:"hero_image_url"`
	ThemeColors     *map[string]string `json:"theme_colors"`
	SocialLinks     *map[string]string `json:"social_links"`
}

// IsEmpty reports whether the update would change nothing.
func (u SiteSettingsUpdate) IsEmpty() bool {
	return u.SiteName == nil && u.SiteDescription == nil && u.ContactEmail == nil &&
		u.ContactPhone == nil && u.Address == nil && u.LogoURL == nil &&
		u.HeroImageURL == nil && u.ThemeColors == nil && u.SocialLinks == nil
}
