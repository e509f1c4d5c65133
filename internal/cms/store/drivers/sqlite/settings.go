package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
)

type settingsRepo struct {
	db dbtx
}

const settingsColumns = `id, site_name, site_description, contact_email, contact_phone, address, logo_url, hero_image_url, theme_colors, social_links, updated_at`

func (r *settingsRepo) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM settings LIMIT 1`)

	var (
		s           domain.SiteSettings
		logoURL     sql.NullString
		heroURL     sql.NullString
		themeColors string
		socialLinks string
	)
	err := row.Scan(
		&s.ID, &s.SiteName, &s.SiteDescription, &s.ContactEmail, &s.ContactPhone,
		&s.Address, &logoURL, &heroURL, &themeColors, &socialLinks, &s.UpdatedAt,
	)
	if err != nil {
		return domain.SiteSettings{}, mapNotFound(err)
	}

	s.LogoURL = mapNullStringPtr(logoURL)
	s.HeroImageURL = mapNullStringPtr(heroURL)
	if s.ThemeColors, err = unmarshalStringMap(themeColors); err != nil {
		return domain.SiteSettings{}, err
	}
	if s.SocialLinks, err = unmarshalStringMap(socialLinks); err != nil {
		return domain.SiteSettings{}, err
	}
	return s, nil
}

func (r *settingsRepo) CreateSettings(ctx context.Context, s domain.SiteSettings) error {
	themeColors, err := marshalJSON(s.ThemeColors)
	if err != nil {
		return err
	}
	socialLinks, err := marshalJSON(s.SocialLinks)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO settings (` + settingsColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, q,
		s.ID, s.SiteName, s.SiteDescription, s.ContactEmail, s.ContactPhone,
		s.Address, mapOptionalString(s.LogoURL), mapOptionalString(s.HeroImageURL),
		themeColors, socialLinks, s.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *settingsRepo) UpdateSettings(ctx context.Context, upd domain.SiteSettingsUpdate, now time.Time) error {
	set := []string{"updated_at = ?"}
	args := []any{now}

	if upd.SiteName != nil {
		set = append(set, "site_name = ?")
		args = append(args, *upd.SiteName)
	}
	if upd.SiteDescription != nil {
		set = append(set, "site_description = ?")
		args = append(args, *upd.SiteDescription)
	}
	if upd.ContactEmail != nil {
		set = append(set, "contact_email = ?")
		args = append(args, *upd.ContactEmail)
	}
	if upd.ContactPhone != nil {
		set = append(set, "contact_phone = ?")
		args = append(args, *upd.ContactPhone)
	}
	if upd.Address != nil {
		set = append(set, "address = ?")
		args = append(args, *upd.Address)
	}
	if upd.LogoURL != nil {
		set = append(set, "logo_url = ?")
		args = append(args, *upd.LogoURL)
	}
	if upd.HeroImageURL != nil {
		set = append(set, "hero_image_url = ?")
		args = append(args, *upd.HeroImageURL)
	}
	if upd.ThemeColors != nil {
		themeColors, err := marshalJSON(*upd.ThemeColors)
		if err != nil {
			return err
		}
		set = append(set, "theme_colors = ?")
		args = append(args, themeColors)
	}
	if upd.SocialLinks != nil {
		socialLinks, err := marshalJSON(*upd.SocialLinks)
		if err != nil {
			return err
		}
		set = append(set, "social_links = ?")
		args = append(args, socialLinks)
	}

	// Singleton row: no key in the WHERE clause.
	res, err := r.db.ExecContext(ctx, `UPDATE settings SET `+strings.Join(set, ", "), args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
