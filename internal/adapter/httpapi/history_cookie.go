package httpapi

import (
	"net/http"
	"time"

	"github.com/example/storefront-service/internal/domain"
)

const (
	viewedCookieName   = "viewed_products"
	viewedCookieMaxAge = 30 * 24 * time.Hour
)

func viewedHistory(r *http.Request) domain.ViewedHistory {
	c, err := r.Cookie(viewedCookieName)
	if err != nil {
		return nil
	}
	return domain.DecodeViewedHistory(c.Value)
}

func setViewedHistory(w http.ResponseWriter, h domain.ViewedHistory) {
	http.SetCookie(w, &http.Cookie{
		Name:     viewedCookieName,
		Value:    h.Encode(),
		Path:     "/",
		MaxAge:   int(viewedCookieMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
