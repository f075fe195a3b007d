// Bulk-imports a directory of HTML files as draft posts. Each file
// becomes one draft; the title comes from the file name and the slug
// is derived from it on insert.
package main

import (
	"flag"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yogachanthat/site/internal/db"
	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/render"
	"github.com/yogachanthat/site/internal/repository"
)

func main() {
	path := flag.String("path", "", "Path to the directory containing .html files")
	dbPath := flag.String("db", "site.db", "Path to the SQLite database")
	flag.Parse()

	if *path == "" {
		log.Fatal("The --path flag is required")
	}

	database := db.NewSQLite(*dbPath)
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.Close()

	repo := repository.NewDBPostRepository(database)

	files, err := os.ReadDir(*path)
	if err != nil {
		log.Fatalf("Error reading directory %s: %v", *path, err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".html") {
			continue
		}
		if err := importFile(*path, file.Name(), repo); err != nil {
			log.Printf("Error importing %s: %v", file.Name(), err)
			continue
		}
		log.Printf("Imported draft from %s", file.Name())
	}
}

func importFile(dir, name string, repo repository.PostRepository) error {
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	// File names like "thien-buoi-sang.html" become readable titles.
	title := strings.TrimSuffix(name, ".html")
	title = strings.ReplaceAll(title, "-", " ")
	title = strings.ReplaceAll(title, "_", " ")

	post := &model.Post{
		Title:   title,
		Content: template.HTML(render.Sanitize(string(content))),
		Status:  model.StatusDraft,
	}

	return repo.Insert(post)
}
