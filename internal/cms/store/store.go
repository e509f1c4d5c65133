package store

import (
	"context"
	"errors"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories per collection to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Pages() Pages
	Projects() Projects
	Settings() Settings
	Media() Media

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername is the lookup used by login and by the auth
	// middleware to resolve a token subject. Usernames are case-sensitive.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate username returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
}

type Pages interface {
	ListPages(ctx context.Context) ([]domain.PageContent, error)

	// GetPageByName resolves the conventional page_name key.
	GetPageByName(ctx context.Context, name string) (domain.PageContent, error)

	CreatePage(ctx context.Context, p domain.PageContent) error

	// UpdatePage applies the non-nil fields of upd to the page with the
	// given name and sets updated_at. Returns ErrNotFound when no row
	// matches.
	UpdatePage(ctx context.Context, name string, upd domain.PageContentUpdate, now time.Time) error

	// DeletePage returns ErrNotFound when nothing was deleted.
	DeletePage(ctx context.Context, name string) error

	// CountPages gates first-boot seeding.
	CountPages(ctx context.Context) (int64, error)
}

type Projects interface {
	// ListProjects returns all projects ordered ascending by display_order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	GetProject(ctx context.Context, id string) (domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error

	// UpdateProject applies the non-nil fields of upd and sets updated_at.
	// Returns ErrNotFound when no row matches.
	UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate, now time.Time) error

	// DeleteProject returns ErrNotFound when nothing was deleted.
	DeleteProject(ctx context.Context, id string) error
}

type Settings interface {
	// GetSettings returns the singleton row or ErrNotFound.
	GetSettings(ctx context.Context) (domain.SiteSettings, error)

	// CreateSettings inserts the singleton. Only called when absent.
	CreateSettings(ctx context.Context, s domain.SiteSettings) error

	// UpdateSettings applies the non-nil fields of upd to the singleton and
	// sets updated_at. Returns ErrNotFound when the singleton is absent.
	UpdateSettings(ctx context.Context, upd domain.SiteSettingsUpdate, now time.Time) error
}

type Media interface {
	ListMedia(ctx context.Context) ([]domain.MediaFile, error)

	GetMedia(ctx context.Context, id string) (domain.MediaFile, error)

	CreateMedia(ctx context.Context, m domain.MediaFile) error

	// DeleteMedia returns ErrNotFound when nothing was deleted.
	DeleteMedia(ctx context.Context, id string) error
}
