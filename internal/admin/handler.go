// Package admin serves the password-protected panel: dashboard, post
// editor and the upload/delete endpoints behind it.
package admin

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yogachanthat/site/internal/auth"
	"github.com/yogachanthat/site/internal/config"
	"github.com/yogachanthat/site/internal/editor"
	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/render"
	"github.com/yogachanthat/site/internal/repository"
	"github.com/yogachanthat/site/internal/routes"
	"github.com/yogachanthat/site/internal/storage"
	"github.com/yogachanthat/site/internal/util"
)

// Memory threshold for multipart parsing; larger uploads spill to disk.
const multipartMemory = 10 << 20

type Handler struct {
	posts    repository.PostRepository
	sessions editor.Store
	images   storage.ObjectStore
	auth     auth.Provider

	fs *embed.FS
}

func NewHandler(posts repository.PostRepository, sessions editor.Store, images storage.ObjectStore, authProvider auth.Provider, fs *embed.FS) *Handler {
	return &Handler{
		posts:    posts,
		sessions: sessions,
		images:   images,
		auth:     authProvider,
		fs:       fs,
	}
}

var adminLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	adminLogger = l
}

// RegisterRoutes mounts the panel on mux. Everything except the login
// page sits behind the auth middleware.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+routes.AdminLogin, h.ServeLogin)
	mux.HandleFunc("POST "+routes.AdminLogin, h.HandleLogin)

	guard := h.auth.RequireAdmin

	mux.Handle("POST "+routes.AdminLogout, guard(http.HandlerFunc(h.HandleLogout)))
	mux.Handle("GET "+routes.AdminDashboard, guard(http.HandlerFunc(h.ServeDashboard)))
	mux.Handle("GET "+routes.AdminEditorNew, guard(http.HandlerFunc(h.ServeNewEditor)))
	mux.Handle("GET "+routes.AdminEditor, guard(http.HandlerFunc(h.ServeEditEditor)))

	mux.Handle("POST "+routes.AdminAPISession, guard(http.HandlerFunc(h.HandleSessionAction)))
	mux.Handle("POST "+routes.AdminAPISessionSave, guard(http.HandlerFunc(h.HandleSessionSave)))
	mux.Handle("POST "+routes.AdminAPISessionCover, guard(http.HandlerFunc(h.HandleCoverUpload)))
	mux.Handle("POST "+routes.AdminAPIImages, guard(http.HandlerFunc(h.HandleImageUpload)))
	mux.Handle("POST "+routes.AdminAPIPostDelete, guard(http.HandlerFunc(h.HandlePostDelete)))
}

var templateFuncs = template.FuncMap{
	"truncate": util.Truncate,
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New(config.TemplateLayout).Funcs(templateFuncs).ParseFS(h.fs,
		config.TemplatesLocalDir+"/"+config.TemplateLayout,
		config.TemplatesLocalDir+"/"+name)
	if err != nil {
		adminLogger.Error().Err(err).Str("template", name).Msg("Error parsing template")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, config.TemplateLayout, data); err != nil {
		adminLogger.Error().Err(err).Str("template", name).Msg("Error executing template")
	}
}

type loginPage struct {
	*model.PageData
	Error string
}

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.auth.CurrentUser(r); ok {
		http.Redirect(w, r, routes.AdminDashboard, http.StatusFound)
		return
	}
	h.renderTemplate(w, config.TemplateLogin, loginPage{PageData: model.NewPageData(r)})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.auth.SignIn(w, r, r.PostFormValue("email"), r.PostFormValue("password"))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		w.WriteHeader(http.StatusUnauthorized)
		h.renderTemplate(w, config.TemplateLogin, loginPage{
			PageData: model.NewPageData(r),
			Error:    config.ErrInvalidCredentials,
		})
		return
	}
	if err != nil {
		adminLogger.Error().Err(err).Msg("Error establishing session")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, routes.AdminDashboard, http.StatusSeeOther)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(w, r); err != nil {
		adminLogger.Error().Err(err).Msg("Error clearing session")
	}
	http.Redirect(w, r, routes.RootPath, http.StatusSeeOther)
}

type dashboardPage struct {
	*model.PageData
	Posts []model.Post
}

// ServeDashboard lists every post, drafts included.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll()
	if err != nil {
		adminLogger.Error().Err(err).Msg("Error loading posts for dashboard")
		http.Error(w, config.ErrLoadPosts, http.StatusInternalServerError)
		return
	}

	data := dashboardPage{PageData: model.NewPageData(r), Posts: posts}
	data.SignedIn = true
	h.renderTemplate(w, config.TemplateDashboard, data)
}

type editorPage struct {
	*model.PageData
	Session editor.Session

	// ContentHTML seeds the rich-text area. It goes through the same
	// sanitizer as the save path, so stored markup cannot escape.
	ContentHTML template.HTML
}

func (h *Handler) ServeNewEditor(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()

	http.SetCookie(w, &http.Cookie{
		Name:  config.CookieEditorSession,
		Value: string(s.ID),
		Path:  "/",
	})

	data := editorPage{PageData: model.NewPageData(r), Session: s}
	data.SignedIn = true
	h.renderTemplate(w, config.TemplateEditor, data)
}

// ServeEditEditor opens an editing session for a stored post. A load
// failure is terminal; the error page offers no retry.
func (h *Handler) ServeEditEditor(w http.ResponseWriter, r *http.Request) {
	id := model.PostID(r.PathValue("id"))

	post, err := h.posts.GetByID(id)
	if err != nil {
		adminLogger.Error().Err(err).Str("post_id", string(id)).Msg("Error loading post for editing")
		w.WriteHeader(http.StatusNotFound)
		h.renderTemplate(w, config.TemplateError, model.NewPageData(r))
		return
	}

	s := h.sessions.CreateFromPost(post)

	http.SetCookie(w, &http.Cookie{
		Name:  config.CookieEditorSession,
		Value: string(s.ID),
		Path:  "/",
	})

	data := editorPage{
		PageData:    model.NewPageData(r),
		Session:     s,
		ContentHTML: render.SanitizeHTML(s.Content),
	}
	data.SignedIn = true
	h.renderTemplate(w, config.TemplateEditor, data)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (editor.Session, bool) {
	s, err := h.sessions.Get(editor.SessionID(r.PathValue("sid")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return editor.Session{}, false
	}
	return s, true
}

func (h *Handler) writeSessionJSON(w http.ResponseWriter, s editor.Session) {
	w.Header().Set(config.HCType, config.CTypeJSON)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		adminLogger.Error().Err(err).Msg("Error encoding session")
	}
}

// actionFromForm maps a field/value pair to an editor action.
func actionFromForm(field, value string) (editor.Action, error) {
	switch field {
	case "title":
		return editor.SetTitle{Title: value}, nil
	case "slug":
		return editor.SetSlug{Slug: value}, nil
	case "excerpt":
		return editor.SetExcerpt{Excerpt: value}, nil
	case "cover_image":
		return editor.SetCoverImage{URL: value}, nil
	case "content":
		return editor.SetContent{Content: value}, nil
	case "status":
		return editor.SetStatus{Status: model.PostStatus(value)}, nil
	default:
		return nil, fmt.Errorf("unknown editor field: %s", field)
	}
}

// HandleSessionAction applies a single field edit and echoes the
// updated session, so the page can reflect derived slugs.
func (h *Handler) HandleSessionAction(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action, err := actionFromForm(r.PostFormValue("field"), r.PostFormValue("value"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s = editor.Apply(s, action)
	if err := h.sessions.Put(s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeSessionJSON(w, s)
}

// HandleSessionSave flushes the session to the store. `status=published`
// in the form implements the publish button; the first successful
// insert binds the session to the new post and redirects to its editor
// page.
func (h *Handler) HandleSessionSave(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.PostFormValue("status") == string(model.StatusPublished) {
		s = editor.Apply(s, editor.SetStatus{Status: model.StatusPublished})
	}

	post := s.Post()
	post.Content = render.SanitizeHTML(s.Content)

	if s.Editing() {
		if err := h.posts.Update(s.PostID, &post); err != nil {
			adminLogger.Error().Err(err).Str("post_id", string(s.PostID)).Msg("Error updating post")
			http.Error(w, config.ErrSavePost, http.StatusInternalServerError)
			return
		}

		if err := h.sessions.Put(s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		h.writeSessionJSON(w, s)
		return
	}

	if err := h.posts.Insert(&post); err != nil {
		adminLogger.Error().Err(err).Msg("Error inserting post")
		http.Error(w, config.ErrSavePost, http.StatusInternalServerError)
		return
	}

	s.PostID = post.ID
	s.Slug = post.Slug
	if err := h.sessions.Put(s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/editor/"+string(post.ID), http.StatusSeeOther)
}

// upload reads one multipart file field and pushes it to object
// storage, returning the public URL.
func (h *Handler) upload(r *http.Request, field string) (string, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return "", &storage.UploadError{Message: "invalid upload", Err: err}
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", &storage.UploadError{Message: "missing file", Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &storage.UploadError{Message: "unreadable file", Err: err}
	}

	name := storage.NewImageName(header.Filename)
	contentType := header.Header.Get(config.HCType)

	if err := h.images.Upload(r.Context(), name, data, contentType); err != nil {
		return "", err
	}

	return h.images.PublicURL(name), nil
}

// HandleCoverUpload replaces the session's cover image. On failure the
// previous cover stays in place and the error is surfaced as-is.
func (h *Handler) HandleCoverUpload(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	url, err := h.upload(r, "cover")
	if err != nil {
		adminLogger.Error().Err(err).Str("session_id", string(s.ID)).Msg("Cover upload failed")
		http.Error(w, fmt.Sprintf(config.ErrUploadImageFmt, err), http.StatusBadGateway)
		return
	}

	s = editor.Apply(s, editor.SetCoverImage{URL: url})
	if err := h.sessions.Put(s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeSessionJSON(w, s)
}

// HandleImageUpload stores an in-body editor image and answers with
// its public URL as plain text.
func (h *Handler) HandleImageUpload(w http.ResponseWriter, r *http.Request) {
	url, err := h.upload(r, "image")
	if err != nil {
		adminLogger.Error().Err(err).Msg("Image upload failed")
		http.Error(w, fmt.Sprintf(config.ErrUploadImageFmt, err), http.StatusBadGateway)
		return
	}

	w.Header().Set(config.HCType, config.CTypePlain)
	fmt.Fprint(w, url)
}

// HandlePostDelete removes a post, but only when the dashboard's
// confirmation dialog set confirm=true. Without it nothing is issued.
func (h *Handler) HandlePostDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.PostFormValue("confirm") != "true" {
		http.Error(w, "deletion requires confirmation", http.StatusBadRequest)
		return
	}

	id := model.PostID(r.PathValue("id"))
	if err := h.posts.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		adminLogger.Error().Err(err).Str("post_id", string(id)).Msg("Error deleting post")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, routes.AdminDashboard, http.StatusSeeOther)
}
