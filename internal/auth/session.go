package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/routes"
)

const sessionKeyEmail = "email"

// SessionProvider implements Provider with a signed session cookie and
// a bcrypt-hashed password for the single admin account.
type SessionProvider struct {
	store       sessions.Store
	sessionName string

	adminEmail        string
	adminPasswordHash []byte
}

func NewSessionProvider(secret []byte, sessionName, adminEmail string, adminPasswordHash []byte) *SessionProvider {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionProvider{
		store:       store,
		sessionName: sessionName,

		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

func (p *SessionProvider) SignIn(w http.ResponseWriter, r *http.Request, email, password string) error {
	// Compare both factors before deciding, so a wrong email costs the
	// same as a wrong password.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(p.adminEmail)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(p.adminPasswordHash, []byte(password))

	if !emailOK || passwordErr != nil {
		authLogger.Warn().Str("email", email).Msg("Failed sign-in attempt")
		return ErrInvalidCredentials
	}

	session, _ := p.store.Get(r, p.sessionName)
	session.Values[sessionKeyEmail] = email
	if err := session.Save(r, w); err != nil {
		return err
	}

	authLogger.Info().Str("email", email).Msg("Admin signed in")

	return nil
}

func (p *SessionProvider) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := p.store.Get(r, p.sessionName)
	session.Options.MaxAge = -1
	delete(session.Values, sessionKeyEmail)
	return session.Save(r, w)
}

func (p *SessionProvider) CurrentUser(r *http.Request) (model.UserID, bool) {
	session, err := p.store.Get(r, p.sessionName)
	if err != nil {
		return "", false
	}

	email, ok := session.Values[sessionKeyEmail].(string)
	if !ok || email == "" {
		return "", false
	}
	return model.UserID(email), true
}

func (p *SessionProvider) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := p.CurrentUser(r)
		if !ok {
			http.Redirect(w, r, routes.AdminLogin, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
	})
}
