// Package render sanitizes editor-produced HTML for safe display.
package render

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

var renderLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	renderLogger = l
}

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy builds the shared policy for post content on first use.
// The policy admits everything the rich-text editor emits and nothing
// executable.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()

		policy.AllowElements("u", "s", "sub", "sup", "mark", "figure", "figcaption")

		// The editor expresses alignment, text color and size inline.
		policy.AllowAttrs("style").OnElements("p", "h1", "h2", "h3", "h4", "span", "li", "blockquote", "img", "figure")
		policy.AllowStyles("text-align", "color", "background-color", "font-size").Globally()

		policy.AllowAttrs("class").OnElements("p", "span", "blockquote", "ul", "ol", "img", "figure")
		policy.AllowAttrs("width", "height", "alt", "title").OnElements("img")
		policy.AllowDataAttributes()

		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("target", "rel").OnElements("a")
	})
	return policy
}

// Sanitize strips dangerous markup from editor HTML. Scripts, event
// handlers and javascript: URLs never survive.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeHTML sanitizes and marks the result safe for templates.
func SanitizeHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}
