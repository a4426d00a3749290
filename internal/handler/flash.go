package handler

import (
	"net/http"

	"github.com/portfolio/backend/pkg/session"
)

const flashCookieName = "portfolio_flash"

// setFlash stores a signed one-shot message for the next GET.
func (h *ContactHandler) setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    session.Sign(msg, h.secret),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and clears the cookie.
// Messages that fail signature verification are silently dropped.
func (h *ContactHandler) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	msg, err := session.Verify(c.Value, h.secret)
	if err != nil {
		return ""
	}
	return msg
}
