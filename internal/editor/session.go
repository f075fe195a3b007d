// Package editor holds the in-memory state of the post being authored
// in the admin panel. A session is mutated only through discrete
// actions and flushed to the persistence gateway on an explicit save;
// abandoning a session discards every edit.
package editor

import (
	"github.com/google/uuid"

	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/slug"
)

type SessionID string

// Session is the immutable draft state of the editor. Apply returns an
// updated copy; the stored value is only replaced on purpose by the
// handler that owns the request.
type Session struct {
	ID SessionID

	// PostID is empty until the first successful insert binds the
	// session to a stored post.
	PostID model.PostID

	Title      string
	Slug       string
	Excerpt    string
	CoverImage string
	Content    string
	Status     model.PostStatus

	// SlugEdited latches once the slug field is edited directly.
	// From then on title edits never touch the slug again; only a new
	// session (new or different post) resets it.
	SlugEdited bool
}

// Action is a single field mutation applied to a session.
type Action interface {
	apply(s Session) Session
}

type SetTitle struct{ Title string }

func (a SetTitle) apply(s Session) Session {
	s.Title = a.Title
	if !s.SlugEdited {
		s.Slug = slug.Slugify(a.Title)
	}
	return s
}

type SetSlug struct{ Slug string }

func (a SetSlug) apply(s Session) Session {
	s.Slug = a.Slug
	s.SlugEdited = true
	return s
}

type SetExcerpt struct{ Excerpt string }

func (a SetExcerpt) apply(s Session) Session {
	s.Excerpt = a.Excerpt
	return s
}

type SetCoverImage struct{ URL string }

func (a SetCoverImage) apply(s Session) Session {
	s.CoverImage = a.URL
	return s
}

type SetContent struct{ Content string }

func (a SetContent) apply(s Session) Session {
	s.Content = a.Content
	return s
}

type SetStatus struct{ Status model.PostStatus }

func (a SetStatus) apply(s Session) Session {
	s.Status = a.Status
	return s
}

// Apply runs one action against a session value and returns the result.
func Apply(s Session, a Action) Session {
	return a.apply(s)
}

// NewSession starts an empty draft with slug auto-derivation enabled.
func NewSession() Session {
	return Session{
		ID:     SessionID(uuid.New().String()),
		Status: model.StatusDraft,
	}
}

// SessionFromPost binds an editing session to an existing post. The
// slug latch starts set: loaded posts never have their slug rewritten
// by title edits.
func SessionFromPost(p *model.Post) Session {
	return Session{
		ID:         SessionID(uuid.New().String()),
		PostID:     p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		CoverImage: p.CoverImage,
		Content:    string(p.Content),
		Status:     p.Status,
		SlugEdited: true,
	}
}

// Post materializes the session as a persistence-ready record. The
// slug falls back to a derivation from the title so a post never
// reaches the store without one.
func (s Session) Post() model.Post {
	sl := s.Slug
	if sl == "" && s.Title != "" {
		sl = slug.Slugify(s.Title)
	}

	return model.Post{
		ID:         s.PostID,
		Title:      s.Title,
		Slug:       sl,
		Excerpt:    s.Excerpt,
		CoverImage: s.CoverImage,
		Status:     s.Status,
	}
}

// Editing reports whether the session is bound to a stored post.
func (s Session) Editing() bool {
	return s.PostID != ""
}

// Published reports whether the session's post is already public.
// Published posts render no publish button.
func (s Session) Published() bool {
	return s.Status == model.StatusPublished
}
