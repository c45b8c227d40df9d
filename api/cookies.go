package api

import (
	"net/http"
	"time"
)

const (
	authCookieName       = "auth_token"
	lastSearchCookieName = "last_search_name"

	// cookieMaxAge matches the one-year token lifetime.
	cookieMaxAge = 365 * 24 * 60 * 60
)

// cookie builds a cookie with the portal's fixed security attributes:
// root path, http-only, strict same-site, secure only in production.
func (a *API) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.production,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   cookieMaxAge,
	}
}

func (a *API) writeAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, a.cookie(authCookieName, token))
}

func (a *API) writeLastSearchCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, a.cookie(lastSearchCookieName, name))
}

// clearAuthCookie expires the auth cookie so a client holding a dead token
// stops replaying it.
func (a *API) clearAuthCookie(w http.ResponseWriter) {
	c := a.cookie(authCookieName, "")
	c.Expires = time.Unix(0, 0)
	c.MaxAge = -1
	http.SetCookie(w, c)
}
