package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackmichael/explore-feed/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id             INTEGER PRIMARY KEY,
	user_name      TEXT    NOT NULL,
	user_location  TEXT    NOT NULL DEFAULT '',
	image_url      TEXT    NOT NULL DEFAULT '',
	likes          INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
	comments       INTEGER NOT NULL DEFAULT 0 CHECK (comments >= 0),
	bookmarks      INTEGER NOT NULL DEFAULT 0 CHECK (bookmarks >= 0)
);

CREATE TABLE IF NOT EXISTS stories (
	id        INTEGER PRIMARY KEY,
	name      TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT ''
);`

// Repository implements domain.FixtureSource on a SQLite file.
type Repository struct {
	db *sql.DB
}

// NewRepository opens the SQLite database at path, verifies the connection
// and applies the schema. The caller should call Close when the repository
// is no longer needed.
func NewRepository(ctx context.Context, path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &Repository{db: db}
	if err := r.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Migrate creates the fixture tables if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Seed replaces the stored fixtures with the given records in one
// transaction.
func (r *Repository) Seed(ctx context.Context, posts []domain.PostRecord, stories []domain.StoryRecord) error {
	if err := domain.ValidatePosts(posts); err != nil {
		return fmt.Errorf("validate posts: %w", err)
	}
	if err := domain.ValidateStories(stories); err != nil {
		return fmt.Errorf("validate stories: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM stories`); err != nil {
		return fmt.Errorf("clear stories: %w", err)
	}

	for _, p := range posts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO posts (id, user_name, user_location, image_url, likes, comments, bookmarks)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.UserName, p.UserLocation, p.ImageURL, p.Likes, p.Comments, p.Bookmarks,
		)
		if err != nil {
			return fmt.Errorf("insert post %d: %w", p.ID, err)
		}
	}

	for _, s := range stories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stories (id, name, image_url)
			VALUES (?, ?, ?)`,
			s.ID, s.Name, s.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("insert story %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Posts returns every stored post ordered by id.
func (r *Repository) Posts(ctx context.Context) ([]domain.PostRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_name, user_location, image_url, likes, comments, bookmarks
		FROM posts
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.PostRecord
	for rows.Next() {
		var p domain.PostRecord
		err := rows.Scan(
			&p.ID,
			&p.UserName,
			&p.UserLocation,
			&p.ImageURL,
			&p.Likes,
			&p.Comments,
			&p.Bookmarks,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// Stories returns every stored story ordered by id.
func (r *Repository) Stories(ctx context.Context) ([]domain.StoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, image_url
		FROM stories
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}
	defer rows.Close()

	var stories []domain.StoryRecord
	for rows.Next() {
		var s domain.StoryRecord
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageURL); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stories: %w", err)
	}
	return stories, nil
}

var _ domain.FixtureSource = (*Repository)(nil)
