package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogachanthat/site/internal/model"
	"github.com/yogachanthat/site/internal/routes"
)

const (
	testEmail    = "admin@yogachanthat.com"
	testPassword = "mat-khau-bi-mat"
)

func newTestProvider(t *testing.T) *SessionProvider {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewSessionProvider([]byte("test-secret"), "yoga_admin", testEmail, hash)
}

// signIn performs a sign-in and returns the session cookies.
func signIn(t *testing.T, p *SessionProvider) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, routes.AdminLogin, nil)
	require.NoError(t, p.SignIn(w, r, testEmail, testPassword))
	return w.Result().Cookies()
}

func TestSignInWrongPassword(t *testing.T) {
	p := newTestProvider(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, routes.AdminLogin, nil)

	err := p.SignIn(w, r, testEmail, "sai-mat-khau")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, w.Result().Cookies(), "no session cookie on failure")
}

func TestSignInWrongEmail(t *testing.T) {
	p := newTestProvider(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, routes.AdminLogin, nil)

	err := p.SignIn(w, r, "someone@else.com", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInThenCurrentUser(t *testing.T) {
	p := newTestProvider(t)
	cookies := signIn(t, p)
	require.NotEmpty(t, cookies)

	r := httptest.NewRequest(http.MethodGet, routes.AdminDashboard, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	userID, ok := p.CurrentUser(r)
	require.True(t, ok)
	assert.Equal(t, model.UserID(testEmail), userID)
}

func TestCurrentUserAnonymous(t *testing.T) {
	p := newTestProvider(t)

	r := httptest.NewRequest(http.MethodGet, routes.AdminDashboard, nil)
	_, ok := p.CurrentUser(r)
	assert.False(t, ok)
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	p := newTestProvider(t)

	handler := p.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for anonymous requests")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.AdminDashboard, nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, routes.AdminLogin, w.Header().Get("Location"))
}

func TestRequireAdminPassesSignedIn(t *testing.T) {
	p := newTestProvider(t)
	cookies := signIn(t, p)

	var gotUser model.UserID
	handler := p.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, routes.AdminDashboard, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.UserID(testEmail), gotUser)
}

func TestSignOutClearsSession(t *testing.T) {
	p := newTestProvider(t)
	cookies := signIn(t, p)

	r := httptest.NewRequest(http.MethodGet, routes.AdminLogout, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	require.NoError(t, p.SignOut(w, r))

	// The sign-out response replaces the cookie with an expired one.
	out := w.Result().Cookies()
	require.NotEmpty(t, out)
	assert.Negative(t, out[0].MaxAge)
}
