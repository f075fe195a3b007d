// Package auth guards the admin panel behind the single configured
// admin account.
package auth

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yogachanthat/site/internal/model"
)

// ErrInvalidCredentials is rendered inline on the login form.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Provider interface {
	// SignIn verifies the credentials and establishes a session.
	SignIn(w http.ResponseWriter, r *http.Request, email, password string) error

	// SignOut drops the current session.
	SignOut(w http.ResponseWriter, r *http.Request) error

	// CurrentUser reports the signed-in admin, if any.
	CurrentUser(r *http.Request) (model.UserID, bool)

	// RequireAdmin redirects anonymous requests to the login page.
	RequireAdmin(next http.Handler) http.Handler
}

var authLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	authLogger = l
}
