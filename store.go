package sitemaps

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested page does not exist.
var ErrNotFound = sql.ErrNoRows

// Page is a content page as stored. Revisions counts every save since
// creation and feeds the change-frequency estimate. Published is the live
// stage: only published pages are candidates for the sitemap. ShowInSearch
// and Priority are nullable because not every page type carries them.
type Page struct {
	Slug         string
	Title        string
	Type         string
	CreatedAt    time.Time
	LastEdited   time.Time
	Revisions    int
	Published    bool
	CanView      bool
	ShowInSearch *bool
	Priority     *float64
}

// Store wraps a SQLite database and provides CRUD and publish operations for
// pages.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of failing with SQLITE_BUSY, synchronous=NORMAL is safe with
	// WAL and avoids an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    page_type TEXT NOT NULL DEFAULT 'Page',
    created_at TEXT NOT NULL,
    last_edited TEXT NOT NULL,
    revisions INTEGER NOT NULL DEFAULT 1,
    published INTEGER NOT NULL DEFAULT 0,
    can_view INTEGER NOT NULL DEFAULT 1,
    show_in_search INTEGER,
    priority REAL
);
`)
	return err
}

// SavePage upserts a page. A first save sets the creation time and a
// revision count of 1; every later save of the same slug bumps the revision
// count and the last-edited time while keeping the original creation time.
func (s *Store) SavePage(p Page) error {
	now := time.Now().UTC()
	created := p.CreatedAt
	if created.IsZero() {
		created = now
	}
	edited := p.LastEdited
	if edited.IsZero() {
		edited = now
	}
	_, err := s.db.Exec(`
INSERT INTO pages (slug, title, page_type, created_at, last_edited, revisions, published, can_view, show_in_search, priority)
VALUES (?, ?, ?, ?, ?, 1, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
    title = excluded.title,
    page_type = excluded.page_type,
    last_edited = excluded.last_edited,
    revisions = pages.revisions + 1,
    published = excluded.published,
    can_view = excluded.can_view,
    show_in_search = excluded.show_in_search,
    priority = excluded.priority`,
		p.Slug, p.Title, pageType(p.Type),
		created.Format(time.RFC3339), edited.Format(time.RFC3339),
		boolInt(p.Published), boolInt(p.CanView),
		nullBool(p.ShowInSearch), nullFloat(p.Priority))
	return err
}

// PublishPage moves a page to the live stage.
func (s *Store) PublishPage(slug string) error {
	return s.setPublished(slug, true)
}

// UnpublishPage removes a page from the live stage.
func (s *Store) UnpublishPage(slug string) error {
	return s.setPublished(slug, false)
}

func (s *Store) setPublished(slug string, published bool) error {
	res, err := s.db.Exec(`UPDATE pages SET published = ?, last_edited = ? WHERE slug = ?`,
		boolInt(published), time.Now().UTC().Format(time.RFC3339), slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const pageColumns = `slug, title, page_type, created_at, last_edited, revisions, published, can_view, show_in_search, priority`

// ListPublishedPages returns all live-stage pages ordered by slug. When
// requireShowInSearch is true the searchable filter is pushed down to the
// query; the visibility filter re-checks it either way.
func (s *Store) ListPublishedPages(requireShowInSearch bool) ([]Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE published = 1`
	if requireShowInSearch {
		query += ` AND show_in_search = 1`
	}
	query += ` ORDER BY slug`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPages(rows)
}

// ListAllPages returns every page, drafts included, ordered by slug (for
// the admin dashboard).
func (s *Store) ListAllPages() ([]Page, error) {
	rows, err := s.db.Query(`SELECT ` + pageColumns + ` FROM pages ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPages(rows)
}

// GetPage returns a page by slug regardless of published status.
func (s *Store) GetPage(slug string) (Page, error) {
	row := s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE slug = ?`, slug)
	p, err := scanPage(row)
	if err != nil {
		return Page{}, err
	}
	return p, nil
}

// DeletePage removes a page by slug.
func (s *Store) DeletePage(slug string) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE slug = ?`, slug)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (Page, error) {
	var (
		p                   Page
		createdAt, lastEdit string
		published, canView  int
		showInSearch        sql.NullInt64
		priority            sql.NullFloat64
	)
	err := row.Scan(&p.Slug, &p.Title, &p.Type, &createdAt, &lastEdit,
		&p.Revisions, &published, &canView, &showInSearch, &priority)
	if err != nil {
		return Page{}, err
	}
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Page{}, err
	}
	p.LastEdited, err = time.Parse(time.RFC3339, lastEdit)
	if err != nil {
		return Page{}, err
	}
	p.Published = published == 1
	p.CanView = canView == 1
	if showInSearch.Valid {
		v := showInSearch.Int64 == 1
		p.ShowInSearch = &v
	}
	if priority.Valid {
		v := priority.Float64
		p.Priority = &v
	}
	return p, nil
}

func scanPages(rows *sql.Rows) ([]Page, error) {
	var pages []Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

func pageType(t string) string {
	if t == "" {
		return "Page"
	}
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullBool(b *bool) any {
	if b == nil {
		return nil
	}
	return boolInt(*b)
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
