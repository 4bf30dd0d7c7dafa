package httpapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/auth"
	"trendella-backend/internal/catalog"
	"trendella-backend/internal/fetch"
	"trendella-backend/internal/model"
	"trendella-backend/internal/recommend"
	"trendella-backend/internal/session"
	"trendella-backend/internal/specbuilder"
	"trendella-backend/internal/trending"
	"trendella-backend/internal/wishlist"
)

type stubVerifier struct {
	identity auth.Identity
	err      error
}

func (s stubVerifier) Verify(context.Context, string) (auth.Identity, error) {
	return s.identity, s.err
}

func newTestServer(verifier auth.TokenVerifier) *Server {
	sessions := session.NewMemoryStore()
	recommender := recommend.NewService(
		specbuilder.NewBuilder(nil, nil),
		fetch.NewRegistry(catalog.NewAmazon("trendella-20", nil)),
		nil,
		sessions,
		nil,
		nil,
	)
	wishlists := wishlist.NewService(wishlist.NewGuestStore(), wishlist.NewGuestStore(), nil)
	return NewServer(recommender, wishlists, sessions, trending.NewMemoryStore(), verifier, nil)
}

func profileBody(t *testing.T) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(model.RecipientProfile{
		Age:            30,
		Interests:      []string{"tech"},
		Budget:         model.Budget{Min: 20, Max: 60, Currency: "USD"},
		FavoriteBrands: []string{"Anker"},
	})
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestTrendingEmptyAndPopulated(t *testing.T) {
	trends := trending.NewMemoryStore()
	server := newTestServer(nil)
	server.trends = trends
	router := server.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trending", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phrases":[],"stores":[]}`, rec.Body.String())

	require.NoError(t, trends.RecordServed(context.Background(), model.RecommendationServed{
		SearchPhrases: []string{"yoga mat"},
		Stores:        []string{"amazon"},
	}))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trending", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"phrases":[{"name":"yoga mat","count":1}],"stores":[{"name":"amazon","count":1}]}`,
		rec.Body.String())
}

func TestHealth(t *testing.T) {
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRecommendReturnsContract(t *testing.T) {
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recommend", profileBody(t)))

	require.Equal(t, http.StatusOK, rec.Code)

	var contract model.RenderingContract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contract))
	assert.NotEmpty(t, contract.ProductsRanked)
	assert.Len(t, contract.Explanations, len(contract.Products))
	assert.NotEmpty(t, contract.FollowUpSuggestions)
	assert.Equal(t, "collect_missing_profile", contract.Meta.NextAction)
}

func TestRecommendGzipResponse(t *testing.T) {
	router := newTestServer(nil).Router()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", profileBody(t))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer gr.Close()
	body, err := io.ReadAll(gr)
	require.NoError(t, err)

	var contract model.RenderingContract
	require.NoError(t, json.Unmarshal(body, &contract))
	assert.NotEmpty(t, contract.Products)
}

func TestRecommendGzipRequestBody(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := io.Copy(gw, profileBody(t))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	router := newTestServer(nil).Router()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendRejectsMalformedBody(t *testing.T) {
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendRejectsInvalidProfile(t *testing.T) {
	body := `{"age":30,"budget":{"min":20,"max":60,"currency":"USDX"},"interests":["tech"]}`
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEchoesLastUserMessage(t *testing.T) {
	body := `{"messages":[{"role":"assistant","content":"hi"},{"role":"user","content":"she loves pottery"}]}`
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "she loves pottery")
}

func TestChatClipsLongMessageOnRuneBoundary(t *testing.T) {
	payload, err := json.Marshal(chatPayload{Messages: []chatMessage{
		{Role: "user", Content: strings.Repeat("日", 210)},
	}})
	require.NoError(t, err)

	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, utf8.ValidString(resp["reply"]))
	assert.Contains(t, resp["reply"], strings.Repeat("日", 200)+`"`)
	assert.NotContains(t, resp["reply"], strings.Repeat("日", 201))
}

func TestChatRejectsUnknownRole(t *testing.T) {
	body := `{"messages":[{"role":"robot","content":"beep"}]}`
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWishlistAddListRemoveGuestFlow(t *testing.T) {
	router := newTestServer(nil).Router()

	// Serve a recommendation first so session memory knows the products.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recommend", profileBody(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var contract model.RenderingContract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contract))
	require.NotEmpty(t, contract.Products)
	target := contract.Products[0]

	addBody := `{"productId":"` + target.ID + `","store":"` + string(target.Store) + `"}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(addBody)))
	require.Equal(t, http.StatusOK, rec.Code)

	guestCookie := rec.Result().Cookies()[0]
	require.Equal(t, auth.GuestCookie, guestCookie.Name)

	listReq := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	listReq.AddCookie(guestCookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, listReq)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Products []model.NormalizedProduct `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Products, 1)
	assert.Equal(t, target.ID, listResp.Products[0].ID)

	removeReq := httptest.NewRequest(http.MethodPost, "/api/wishlist/remove", strings.NewReader(addBody))
	removeReq.AddCookie(guestCookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, removeReq)
	require.Equal(t, http.StatusOK, rec.Code)

	listReq = httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	listReq.AddCookie(guestCookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, listReq)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Products)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/wishlist/add",
		strings.NewReader(`{"productId":"nope"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMeGuestAndUser(t *testing.T) {
	router := newTestServer(stubVerifier{identity: auth.Identity{UID: "u1", Email: "u@example.com", Name: "U"}}).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var guestResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guestResp))
	assert.NotEmpty(t, guestResp["guest_id"])

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var userResp struct {
		User map[string]string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &userResp))
	assert.Equal(t, "u1", userResp.User["uid"])
}

func TestAuthSessionMergesGuestWishlist(t *testing.T) {
	server := newTestServer(stubVerifier{identity: auth.Identity{UID: "user-9"}})
	router := server.Router()

	// Build guest state: recommend, then save one product as guest.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recommend", profileBody(t)))
	var contract model.RenderingContract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contract))
	require.NotEmpty(t, contract.Products)
	target := contract.Products[0]

	addBody := `{"productId":"` + target.ID + `","store":"` + string(target.Store) + `"}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(addBody)))
	require.Equal(t, http.StatusOK, rec.Code)
	guestCookie := rec.Result().Cookies()[0]

	// Sign in: the guest's saved product moves to the user wishlist.
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/session",
		strings.NewReader(`{"idToken":"fresh-token"}`))
	loginReq.AddCookie(guestCookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, loginReq)
	require.Equal(t, http.StatusOK, rec.Code)

	userReq := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	userReq.Header.Set("Authorization", "Bearer fresh-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, userReq)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Products []model.NormalizedProduct `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Products, 1)
	assert.Equal(t, target.ID, listResp.Products[0].ID)
}

func TestAuthSessionRejectsBadToken(t *testing.T) {
	router := newTestServer(stubVerifier{err: errors.New("expired")}).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/session",
		strings.NewReader(`{"idToken":"stale"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSessionUnavailableWithoutVerifier(t *testing.T) {
	router := newTestServer(nil).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/session",
		strings.NewReader(`{"idToken":"t"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
