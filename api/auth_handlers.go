package api

import (
	"errors"
	"net/http"

	"github.com/planportal/planportal/internal/credstore"
	"github.com/planportal/planportal/internal/digest"
	"github.com/planportal/planportal/internal/token"
)

// maxAuthBodySize caps request bodies on the auth endpoints.
const maxAuthBodySize = 4 << 10

// Login handles POST /api/login.
//
// The admin credential pair is checked before the general store, so the
// admin account can never be shadowed by an athlete record.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[LoginRequest](w, r, maxAuthBodySize)
	if err != nil {
		a.logger.Error("login: failed to read request body", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	userKeyHash := digest.UserKey(req.Username)
	passwordHash := digest.Sum(req.Password)

	if userKeyHash == a.admin.UsernameHash {
		if passwordHash != a.admin.PasswordHash {
			writeError(w, http.StatusUnauthorized, msgWrongPassword)
			return
		}
		tok, err := token.Issue(token.Claims{
			UserKeyHash: userKeyHash,
			Username:    req.Username,
			IsAdmin:     true,
		}, a.secret, token.DefaultTTL)
		if err != nil {
			a.logger.Error("login: failed to issue admin token", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		a.writeAuthCookie(w, tok)
		writeJSON(w, http.StatusOK, LoginResponse{
			Success:  true,
			IsAdmin:  true,
			Username: req.Username,
		})
		return
	}

	rec, err := a.store.Lookup(userKeyHash)
	if errors.Is(err, credstore.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, msgInvalidUsername)
		return
	}
	if passwordHash != rec.PasswordHash {
		writeError(w, http.StatusUnauthorized, msgWrongPassword)
		return
	}

	tok, err := token.Issue(token.Claims{
		UserKeyHash:   userKeyHash,
		Username:      req.Username,
		IsAdmin:       false,
		SheetURL:      rec.SheetURL,
		EditPlanSheet: rec.EditPlanSheet,
	}, a.secret, token.DefaultTTL)
	if err != nil {
		a.logger.Error("login: failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	a.writeAuthCookie(w, tok)
	writeJSON(w, http.StatusOK, LoginResponse{
		Success:       true,
		IsAdmin:       false,
		SheetURL:      rec.SheetURL,
		EditPlanSheet: rec.EditPlanSheet,
		Username:      req.Username,
	})
}

// Verify handles GET /api/verify. It always answers 200: a missing or dead
// session degrades to authenticated:false rather than an error status.
func (a *API) Verify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusOK, notAuthenticatedResponse{})
		return
	}

	claims, err := token.Verify(cookie.Value, a.secret)
	if err != nil {
		// Dead token: clear it so the client stops replaying it.
		a.clearAuthCookie(w)
		writeJSON(w, http.StatusOK, notAuthenticatedResponse{})
		return
	}

	resp := VerifyResponse{
		Authenticated: true,
		IsAdmin:       claims.IsAdmin,
		SheetURL:      claims.SheetURL,
		EditPlanSheet: claims.EditPlanSheet,
		Username:      claims.Username,
		UserKeyHash:   claims.UserKeyHash,
	}
	if claims.IsAdmin {
		if c, err := r.Cookie(lastSearchCookieName); err == nil && c.Value != "" {
			resp.LastSearchName = c.Value
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// AdminSearch handles POST /api/admin-search: authorize, look up the
// athlete by name digest, remember the search in a cookie.
func (a *API) AdminSearch(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, msgNotLoggedIn)
		return
	}

	claims, err := token.Verify(cookie.Value, a.secret)
	if err != nil {
		writeError(w, http.StatusUnauthorized, msgInvalidSession)
		return
	}
	if !claims.IsAdmin {
		writeError(w, http.StatusForbidden, msgNoAccess)
		return
	}

	req, err := decodeJSON[AdminSearchRequest](w, r, maxAuthBodySize)
	if err != nil {
		// Malformed bodies get the same uniform 401 as a bad token.
		writeError(w, http.StatusUnauthorized, msgInvalidSession)
		return
	}

	rec, err := a.store.Lookup(digest.UserKey(req.SearchName))
	if errors.Is(err, credstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgAthleteNotFound)
		return
	}

	// Stored with original casing; the digest is only used for lookup.
	a.writeLastSearchCookie(w, req.SearchName)
	writeJSON(w, http.StatusOK, AdminSearchResponse{
		Success:       true,
		SheetURL:      rec.SheetURL,
		EditPlanSheet: rec.EditPlanSheet,
		SearchName:    req.SearchName,
	})
}

// FellesOkterURL handles GET /api/felles-okter-url. It exposes the shared
// training sessions sheet to the frontend; no auth required.
func (a *API) FellesOkterURL(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FellesOkterURLResponse{URL: a.fellesOkterURL})
}
