// Package repository implements the persistence gateway for posts and
// contact-form messages.
package repository

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/yogachanthat/site/internal/model"
)

// ErrNotFound is returned when a post does not exist (or, for public
// lookups, is not published).
var ErrNotFound = errors.New("post not found")

type PostRepository interface {
	// ListPublished returns published posts ordered by creation date,
	// newest first.
	ListPublished() ([]model.Post, error)

	// ListAll returns every post regardless of status, newest first.
	// Admin-only access path.
	ListAll() ([]model.Post, error)

	// GetBySlug returns the published post with the given slug.
	GetBySlug(slug string) (*model.Post, error)

	// GetByID returns a post in any status. Admin-only access path.
	GetByID(id model.PostID) (*model.Post, error)

	// Insert stores a new post, assigning its ID and creation date.
	// An empty slug is derived from the title before the write.
	Insert(post *model.Post) error

	// Update replaces the mutable fields of an existing post.
	Update(id model.PostID, post *model.Post) error

	// Delete irreversibly removes a post.
	Delete(id model.PostID) error
}

type MessageRepository interface {
	// Insert stores a contact-form submission. Messages are
	// write-once; no read path exists.
	Insert(msg *model.Message) error
}

var repoLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}
