package auth

import (
	"net/http"
	"strings"
)

const SessionCookieName = "admin_session"

// ParseCookieHeader splits a raw Cookie header into key/value pairs. Each pair
// is split on its first '='; pairs without one are skipped.
func ParseCookieHeader(header string) map[string]string {
	cookies := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		cookies[key] = value
	}
	return cookies
}

// SessionFromCookieHeader returns the claims of a valid session cookie.
func SessionFromCookieHeader(cookieHeader, secret string) (*AppClaims, bool) {
	if cookieHeader == "" || secret == "" {
		return nil, false
	}

	token := ParseCookieHeader(cookieHeader)[SessionCookieName]
	if token == "" {
		return nil, false
	}

	claims, err := VerifySessionToken(token, secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// VerifySessionCookie reports whether the header carries a valid session.
// Every failure, including a missing secret, is reported as false.
func VerifySessionCookie(cookieHeader, secret string) bool {
	_, ok := SessionFromCookieHeader(cookieHeader, secret)
	return ok
}

func SessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedSessionCookie expires the session cookie on the client.
func ClearedSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
