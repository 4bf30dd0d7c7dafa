package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	identity Identity
	err      error
}

func (s stubVerifier) Verify(context.Context, string) (Identity, error) {
	return s.identity, s.err
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	var got Identity
	var ok bool
	handler := Middleware(stubVerifier{identity: Identity{UID: "u1", Email: "u@example.com"}}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = IdentityFrom(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "u1", got.UID)
}

func TestMiddlewareInvalidTokenStaysAnonymous(t *testing.T) {
	var ok bool
	handler := Middleware(stubVerifier{err: errors.New("expired")}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok = IdentityFrom(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareNoHeaderSkipsVerifier(t *testing.T) {
	var ok bool
	handler := Middleware(stubVerifier{identity: Identity{UID: "u1"}}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok = IdentityFrom(r.Context())
		}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestEnsureGuestIDMintsOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	guestID := EnsureGuestID(rec, req)
	require.NotEmpty(t, guestID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, GuestCookie, cookies[0].Name)
	assert.Equal(t, guestID, cookies[0].Value)

	// A request already carrying the cookie keeps its id and sets nothing.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: GuestCookie, Value: guestID})
	assert.Equal(t, guestID, EnsureGuestID(rec2, req2))
	assert.Empty(t, rec2.Result().Cookies())
}

func TestSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", SessionID(req))

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "192.0.2.4:51234"
	assert.Equal(t, "192.0.2.4", SessionID(req2))
}
