package main

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/yogachanthat/site/internal/admin"
	"github.com/yogachanthat/site/internal/auth"
	"github.com/yogachanthat/site/internal/cache"
	"github.com/yogachanthat/site/internal/config"
	"github.com/yogachanthat/site/internal/db"
	"github.com/yogachanthat/site/internal/editor"
	"github.com/yogachanthat/site/internal/logger"
	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/render"
	"github.com/yogachanthat/site/internal/repository"
	"github.com/yogachanthat/site/internal/routes"
	"github.com/yogachanthat/site/internal/storage"
	"github.com/yogachanthat/site/internal/util"
)

//go:embed static/* templates/*
var content embed.FS

// How many recent posts the home page teases.
const homePostCount = 3

var (
	postRepository    repository.PostRepository
	messageRepository repository.MessageRepository

	validate = validator.New()

	mainLogger zerolog.Logger
)

func main() {
	if err := godotenv.Load(); err != nil {
		mainLogger.Info().Msg("No .env file found")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		mainLogger.Fatal().Err(err).Msg("Error loading configuration")
	}

	l := logger.New(config.AppConfig.Logging.Level)
	mainLogger = l
	setLoggers(l)

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "site.db"
	}

	database := db.NewSQLite(dbPath)
	if err := database.InitDB(); err != nil {
		mainLogger.Fatal().Err(err).Msgf(config.ErrInitializeDatabaseFmt, err)
	}
	defer database.Close()

	postRepository = repository.NewDBPostRepository(database)
	messageRepository = repository.NewDBMessageRepository(database)

	store := config.AppConfig.Storage
	objectStore, err := storage.NewS3ObjectStore(
		os.Getenv("S3_ACCESS_KEY_ID"),
		os.Getenv("S3_SECRET_ACCESS_KEY"),
		store.Endpoint,
		store.Region,
		store.Bucket,
		store.PublicBaseURL,
	)
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Error initializing object storage")
	}

	authProvider := auth.NewSessionProvider(
		[]byte(os.Getenv("SESSION_SECRET")),
		config.AppConfig.Auth.SessionName,
		config.AppConfig.Auth.AdminEmail,
		[]byte(os.Getenv("ADMIN_PASSWORD_HASH")),
	)

	adminHandler := admin.NewHandler(
		postRepository,
		editor.NewMemoryStore(),
		objectStore,
		authProvider,
		&content,
	)

	hashStaticContent()

	mux := buildMux(adminHandler)

	securedMux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routes.RobotsPath {
			mux.ServeHTTP(w, r)
		} else {
			secureHeaders(mux.ServeHTTP)(w, r)
		}
	})

	addr := config.AppConfig.Server.Host + ":" + config.AppConfig.Server.Port
	mainLogger.Info().Str("addr", addr).Msg("Server listening")
	mainLogger.Fatal().Err(http.ListenAndServe(addr, cacheIt(securedMux))).Msg("Server stopped")
}

func setLoggers(l zerolog.Logger) {
	config.SetLogger(l)
	db.SetLogger(l)
	repository.SetLogger(l)
	storage.SetLogger(l)
	auth.SetLogger(l)
	admin.SetLogger(l)
	render.SetLogger(l)
}

// hashStaticContent precomputes ETags for every embedded static file.
func hashStaticContent() {
	static, _ := fs.Sub(content, config.StaticLocalDir)
	fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			data, readErr := fs.ReadFile(static, path)
			if readErr != nil {
				return nil
			}
			cache.SetStaticHash(config.StaticUrlPath+path, util.ContentHash(data))
		}
		return nil
	})
}

func buildMux(adminHandler *admin.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(routes.RobotsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(config.HCType, config.CTypePlain)
		w.Write([]byte("User-agent: *\nDisallow: /admin/\n"))
	})

	static, _ := fs.Sub(content, config.StaticLocalDir)
	mux.Handle(config.StaticUrlPath, http.StripPrefix(config.StaticUrlPath, http.FileServer(http.FS(static))))

	mux.HandleFunc("GET /{$}", serveHome)
	mux.HandleFunc("GET "+routes.AboutPath, serveAbout)
	mux.HandleFunc("GET "+routes.BlogPath, serveBlog)
	mux.HandleFunc("GET "+routes.BlogPost, serveBlogPost)
	mux.HandleFunc("GET "+routes.ContactPath, serveContactForm)
	mux.HandleFunc("POST "+routes.ContactPath, serveContactSubmit)
	mux.HandleFunc("/", serveNotFound)

	adminHandler.RegisterRoutes(mux)

	return mux
}

func renderPage(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.ParseFS(content,
		config.TemplatesLocalDir+"/"+config.TemplateLayout,
		config.TemplatesLocalDir+"/"+name)
	if err != nil {
		mainLogger.Error().Err(err).Str("template", name).Msg("Error parsing template")
		http.Error(w, config.ErrInternalServerError, http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, config.TemplateLayout, data); err != nil {
		mainLogger.Error().Err(err).Str("template", name).Msg("Error executing template")
	}
}

// publishedPosts degrades to an empty list when the store fails; the
// public site never surfaces a database error.
func publishedPosts() []model.Post {
	posts, err := postRepository.ListPublished()
	if err != nil {
		mainLogger.Error().Err(err).Msg(config.ErrLoadPosts)
		return nil
	}
	return posts
}

func serveHome(w http.ResponseWriter, r *http.Request) {
	posts := publishedPosts()
	if len(posts) > homePostCount {
		posts = posts[:homePostCount]
	}

	data := struct {
		*model.PageData
		Posts []model.Post
	}{
		PageData: model.NewPageData(r),
		Posts:    posts,
	}

	renderPage(w, config.TemplateHome, data)
}

func serveAbout(w http.ResponseWriter, r *http.Request) {
	renderPage(w, config.TemplateAbout, model.NewPageData(r))
}

func serveBlog(w http.ResponseWriter, r *http.Request) {
	posts := publishedPosts()

	perPage := config.AppConfig.Content.PostsPerPage
	if perPage < 1 {
		perPage = len(posts)
	}

	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 1 {
		page = p
	}

	start := (page - 1) * perPage
	if start > len(posts) {
		start = len(posts)
	}
	end := start + perPage
	if end > len(posts) {
		end = len(posts)
	}

	data := struct {
		*model.PageData
		Posts    []model.Post
		Page     int
		PrevPage int
		NextPage int
	}{
		PageData: model.NewPageData(r),
		Posts:    posts[start:end],
		Page:     page,
	}
	if page > 1 {
		data.PrevPage = page - 1
	}
	if end < len(posts) {
		data.NextPage = page + 1
	}

	renderPage(w, config.TemplateBlog, data)
}

func serveBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := postRepository.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			mainLogger.Error().Err(err).Str("slug", slug).Msg(config.ErrLoadPosts)
		}
		serveNotFound(w, r)
		return
	}

	data := struct {
		*model.PageData
		Post *model.Post
	}{
		PageData: model.NewPageData(r),
		Post:     post,
	}

	renderPage(w, config.TemplatePost, data)
}

type contactPage struct {
	*model.PageData
	Form    model.Message
	Error   string
	Success bool
}

func serveContactForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, config.TemplateContact, contactPage{PageData: model.NewPageData(r)})
}

func serveContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg := model.Message{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Body:  r.PostFormValue("message"),
	}

	if err := validate.Struct(msg); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		renderPage(w, config.TemplateContact, contactPage{
			PageData: model.NewPageData(r),
			Form:     msg,
			Error:    "Vui lòng điền tên, email hợp lệ và lời nhắn.",
		})
		return
	}

	if err := messageRepository.Insert(&msg); err != nil {
		mainLogger.Error().Err(err).Msg("Error storing contact message")
		w.WriteHeader(http.StatusInternalServerError)
		renderPage(w, config.TemplateContact, contactPage{
			PageData: model.NewPageData(r),
			Form:     msg,
			Error:    "Không gửi được lời nhắn, vui lòng thử lại sau.",
		})
		return
	}

	renderPage(w, config.TemplateContact, contactPage{
		PageData: model.NewPageData(r),
		Success:  true,
	})
}

func serveNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	renderPage(w, config.TemplateNotFound, model.NewPageData(r))
}

func cacheIt(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(config.HCacheControl, "no-cache")
		w.Header().Set("Vary", "Cookie")

		// Static files get a content-addressed ETag
		if hash, ok := cache.GetStaticHash(r.URL.Path); ok {
			w.Header().Set(config.HCacheControl, "public, max-age=3600")
			w.Header().Set(config.HETag, hash)
		}

		h.ServeHTTP(w, r)
	}
}

func secureHeaders(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-XSS-Protection", "1; mode=block")

		h(w, r)
	}
}
