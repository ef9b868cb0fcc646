package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash is a one-shot user notice carried across a redirect in a
// cookie, drained on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"

	flashCookieName = "gigbook_flash"
)

// AddFlash queues a notice for the next rendered page.
func AddFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlashes returns any pending notices and clears the cookie.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return []Flash{{Category: FlashSuccess, Message: string(decoded)}}
	}
	return []Flash{{Category: category, Message: message}}
}
