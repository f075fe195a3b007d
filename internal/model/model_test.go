package model

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yogachanthat/site/internal/config"
)

func TestPostPublished(t *testing.T) {
	testCases := []struct {
		name   string
		status PostStatus
		want   bool
	}{
		{"Draft", StatusDraft, false},
		{"Published", StatusPublished, true},
		{"Zero value", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Post{Status: tc.status}
			if got := p.Published(); got != tc.want {
				t.Errorf("Published() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPostZeroValue(t *testing.T) {
	p := &Post{}

	if p.ID != "" {
		t.Errorf("Expected empty ID, got %s", p.ID)
	}
	if p.Slug != "" {
		t.Errorf("Expected empty Slug, got %s", p.Slug)
	}
	if p.Published() {
		t.Error("Expected zero-value post to not be published")
	}
	if !p.CreatedAt.Equal(time.Time{}) {
		t.Errorf("Expected zero CreatedAt, got %v", p.CreatedAt)
	}
}

func TestNewPageData(t *testing.T) {
	originalConfig := config.AppConfig
	defer func() { config.AppConfig = originalConfig }()

	config.AppConfig = &config.Config{
		Site: config.SiteConfig{
			Name:        "Test Site",
			Tagline:     "Test Tagline",
			Description: "Test Description",
		},
		Meta: config.MetaConfig{
			Keywords: []string{"yoga", "blog"},
		},
	}

	req := httptest.NewRequest("GET", "/blog/some-post", nil)
	pd := NewPageData(req)

	if pd == nil {
		t.Fatal("Expected non-nil PageData")
	}
	if pd.SiteName != "Test Site" {
		t.Errorf("Expected SiteName 'Test Site', got %s", pd.SiteName)
	}
	if pd.SiteTagline != "Test Tagline" {
		t.Errorf("Expected SiteTagline 'Test Tagline', got %s", pd.SiteTagline)
	}
	if pd.PageURL != "/blog/some-post" {
		t.Errorf("Expected PageURL '/blog/some-post', got %s", pd.PageURL)
	}
	if len(pd.SiteKeywords) != 2 {
		t.Errorf("Expected 2 keywords, got %d", len(pd.SiteKeywords))
	}
	if pd.SignedIn {
		t.Error("Expected SignedIn to default to false")
	}
	if pd.Year != time.Now().Year() {
		t.Errorf("Expected current year, got %d", pd.Year)
	}
}
