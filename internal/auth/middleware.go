package auth

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestCookie names the anonymous-visitor cookie.
const GuestCookie = "guest_session_id"

const guestCookieMaxAge = 30 * 24 * time.Hour

type contextKey int

const identityKey contextKey = iota

// Middleware attaches a verified Identity to the request context when a
// Bearer token is present and valid. It never rejects: endpoints that require
// a user check IdentityFrom themselves, everything else serves guests.
func Middleware(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" && verifier != nil {
				identity, err := verifier.Verify(r.Context(), token)
				if err != nil {
					logger.Warn("bearer token rejected", slog.Any("error", err))
				} else {
					r = r.WithContext(WithIdentity(r.Context(), identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity returns ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns the verified identity on the context, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// EnsureGuestID returns the request's guest id, minting and setting a cookie
// when absent.
func EnsureGuestID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(GuestCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	guestID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    guestID,
		Path:     "/",
		MaxAge:   int(guestCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return guestID
}

// GuestID returns the guest cookie value without minting one.
func GuestID(r *http.Request) string {
	if cookie, err := r.Cookie(GuestCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// ClearGuestCookie expires the guest cookie after a wishlist merge.
func ClearGuestCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionID derives the conversation key for session memory: the nearest
// client address, which groups repeat requests from one browser well enough
// for a short-lived cache.
func SessionID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "anonymous"
}
