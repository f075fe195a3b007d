package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/yogachanthat/site/internal/db"
	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/slug"
	"github.com/yogachanthat/site/internal/util/compression"
)

const postColumns = `id, title, slug, content, excerpt, cover_image, status, created_at`

type DBPostRepository struct { // implements PostRepository
	db         db.DB
	compressor compression.Compressor
}

func NewDBPostRepository(database db.DB) *DBPostRepository {
	return &DBPostRepository{
		db: database,

		compressor: compression.ZstdCompressor{},
	}
}

func (r *DBPostRepository) ListPublished() ([]model.Post, error) {
	return r.list(`SELECT ` + postColumns + ` FROM posts WHERE status = 'published' ORDER BY created_at DESC`)
}

func (r *DBPostRepository) ListAll() ([]model.Post, error) {
	return r.list(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`)
}

func (r *DBPostRepository) list(query string) ([]model.Post, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := r.scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	return posts, rows.Err()
}

func (r *DBPostRepository) GetBySlug(s string) (*model.Post, error) {
	row := r.db.QueryRow(
		`SELECT `+postColumns+` FROM posts WHERE slug = ? AND status = 'published'`, s)
	return r.getOne(row)
}

func (r *DBPostRepository) GetByID(id model.PostID) (*model.Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return r.getOne(row)
}

func (r *DBPostRepository) getOne(row *sql.Row) (*model.Post, error) {
	post, err := r.scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *DBPostRepository) scanPost(scan func(...any) error) (*model.Post, error) {
	var post model.Post
	var compressed []byte
	var content string

	err := scan(&post.ID, &post.Title, &post.Slug, &compressed,
		&post.Excerpt, &post.CoverImage, &post.Status, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning post: %w", err)
	}

	if len(compressed) > 0 {
		decompressed, err := r.compressor.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("error decompressing content: %w", err)
		}
		content = string(decompressed)
	}
	post.Content = template.HTML(content)

	return &post, nil
}

// Insert stores a new post. The repository assigns the ID and creation
// date. A post must carry a slug before it can be persisted; when the
// slug is empty it is derived from the title.
func (r *DBPostRepository) Insert(post *model.Post) error {
	if post.Slug == "" && post.Title != "" {
		post.Slug = slug.Slugify(post.Title)
	}
	if post.Slug == "" {
		return fmt.Errorf("post has no slug and no title to derive one from")
	}
	if post.Status == "" {
		post.Status = model.StatusDraft
	}

	post.ID = model.PostID(uuid.New().String())
	post.CreatedAt = time.Now().UTC()

	compressed, err := r.compressor.Compress([]byte(post.Content))
	if err != nil {
		return fmt.Errorf("error compressing content: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Slug, compressed,
		post.Excerpt, post.CoverImage, post.Status, post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving post: %w", err)
	}

	repoLogger.Debug().Str("post_id", string(post.ID)).Str("slug", post.Slug).Msg("Post inserted")

	return nil
}

// Update replaces the mutable fields of the post with the given id.
func (r *DBPostRepository) Update(id model.PostID, post *model.Post) error {
	if post.Slug == "" && post.Title != "" {
		post.Slug = slug.Slugify(post.Title)
	}
	if post.Slug == "" {
		return fmt.Errorf("post has no slug and no title to derive one from")
	}

	compressed, err := r.compressor.Compress([]byte(post.Content))
	if err != nil {
		return fmt.Errorf("error compressing content: %w", err)
	}

	res, err := r.db.Exec(
		`UPDATE posts SET title = ?, slug = ?, content = ?, excerpt = ?, cover_image = ?, status = ? WHERE id = ?`,
		post.Title, post.Slug, compressed, post.Excerpt, post.CoverImage, post.Status, id,
	)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	repoLogger.Debug().Str("post_id", string(id)).Msg("Post updated")

	return nil
}

func (r *DBPostRepository) Delete(id model.PostID) error {
	res, err := r.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	repoLogger.Info().Str("post_id", string(id)).Msg("Post deleted")

	return nil
}

type DBMessageRepository struct { // implements MessageRepository
	db db.DB
}

func NewDBMessageRepository(database db.DB) *DBMessageRepository {
	return &DBMessageRepository{db: database}
}

func (r *DBMessageRepository) Insert(msg *model.Message) error {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`INSERT INTO messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Body, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving message: %w", err)
	}

	repoLogger.Info().Str("message_id", msg.ID).Msg("Contact message stored")

	return nil
}
