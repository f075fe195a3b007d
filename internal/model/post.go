// Package model defines core data structures and types for the site.
package model

import (
	"html/template"
	"time"
)

type PostID string

type UserID string

// PostStatus is the lifecycle state of a post. The only supported
// transition is draft -> published.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

type Post struct {
	ID PostID

	Title string

	// Slug is the URL-safe identifier, unique within the store.
	// Derived from Title at save time when left empty.
	Slug string

	// Content is sanitized HTML produced by the rich-text editor.
	Content template.HTML

	Excerpt string

	// CoverImage is the public URL of an uploaded asset, or empty.
	CoverImage string

	Status PostStatus

	CreatedAt time.Time
}

func (p Post) Published() bool {
	return p.Status == StatusPublished
}

// Message is a contact-form submission. Write-once; the site defines
// no read path for messages.
type Message struct {
	ID    string
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Body  string `validate:"required"`

	CreatedAt time.Time
}
