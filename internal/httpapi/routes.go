// Package httpapi exposes the recommendation pipeline, wishlist, and auth
// glue over HTTP.
package httpapi

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"trendella-backend/internal/auth"
	"trendella-backend/internal/model"
	"trendella-backend/internal/recommend"
	"trendella-backend/internal/session"
	"trendella-backend/internal/trending"
	"trendella-backend/internal/wishlist"
)

// go-playground/validator/v10: struct-tag validation for request payloads.
var validate = validator.New()

// Server holds the handlers' collaborators.
type Server struct {
	recommender *recommend.Service
	wishlists   *wishlist.Service
	sessions    session.Store
	trends      trending.Store
	verifier    auth.TokenVerifier
	logger      *slog.Logger
}

// NewServer creates the HTTP surface. verifier may be nil, which disables
// signed-in features but keeps the guest flow working.
func NewServer(
	recommender *recommend.Service,
	wishlists *wishlist.Service,
	sessions session.Store,
	trends trending.Store,
	verifier auth.TokenVerifier,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		recommender: recommender,
		wishlists:   wishlists,
		sessions:    sessions,
		trends:      trends,
		verifier:    verifier,
		logger:      logger,
	}
}

// Router builds the route table.
// gorilla/mux: method-based routing and URL pattern matching.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.Middleware(s.verifier, s.logger))

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/recommend", s.handleRecommend).Methods(http.MethodPost)
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/wishlist", s.handleWishlistList).Methods(http.MethodGet)
	r.HandleFunc("/api/wishlist/add", s.handleWishlistAdd).Methods(http.MethodPost)
	r.HandleFunc("/api/wishlist/remove", s.handleWishlistRemove).Methods(http.MethodPost)
	r.HandleFunc("/api/trending", s.handleTrending).Methods(http.MethodGet)
	r.HandleFunc("/api/me", s.handleMe).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/session", s.handleAuthSession).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.handleAuthLogout).Methods(http.MethodPost)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var profile model.RecipientProfile
	if !s.decodeBody(w, r, &profile) {
		return
	}
	if err := validate.Struct(profile); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	sessionID := auth.SessionID(r)
	contract, err := s.recommender.Recommend(r.Context(), sessionID, profile)
	if err != nil {
		s.logger.Error("recommendation pipeline failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "recommendation failed")
		return
	}
	writeJSON(w, r, http.StatusOK, contract)
}

type chatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

type chatPayload struct {
	Messages []chatMessage `json:"messages" validate:"required,min=1,dive"`
}

// handleChat is the lightweight conversational acknowledgement between
// profile edits; the heavy lifting happens in /api/recommend.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if !s.decodeBody(w, r, &payload) {
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid chat payload: "+err.Error())
		return
	}

	reply := "Happy to keep ideating whenever you're ready."
	for i := len(payload.Messages) - 1; i >= 0; i-- {
		if payload.Messages[i].Role == "user" {
			content := clipRunes(payload.Messages[i].Content, 200)
			reply = "Thanks! I noted: \"" + content + "\". Let me refine the gift ideas."
			break
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"reply": reply})
}

type wishlistBody struct {
	ProductID string `json:"productId" validate:"required,min=1"`
	Store     string `json:"store" validate:"omitempty,oneof=amazon aliexpress shein ebay etsy bestbuy"`
}

func (s *Server) handleWishlistList(w http.ResponseWriter, r *http.Request) {
	userID, guestID := s.actor(w, r)
	products, err := s.wishlists.List(r.Context(), userID, guestID)
	if err != nil {
		s.logger.Error("wishlist list failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "wishlist unavailable")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) handleWishlistAdd(w http.ResponseWriter, r *http.Request) {
	var body wishlistBody
	if !s.decodeBody(w, r, &body) {
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid wishlist payload: "+err.Error())
		return
	}

	product, ok, err := s.sessions.Lookup(r.Context(), auth.SessionID(r), body.ProductID, model.Store(body.Store))
	if err != nil {
		s.logger.Error("session lookup failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "wishlist unavailable")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "product not found in recent recommendations")
		return
	}

	userID, guestID := s.actor(w, r)
	if err := s.wishlists.Save(r.Context(), userID, guestID, product); err != nil {
		s.logger.Error("wishlist save failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "wishlist unavailable")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleWishlistRemove(w http.ResponseWriter, r *http.Request) {
	var body wishlistBody
	if !s.decodeBody(w, r, &body) {
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid wishlist payload: "+err.Error())
		return
	}

	userID, guestID := s.actor(w, r)
	if err := s.wishlists.Remove(r.Context(), userID, guestID, body.ProductID, model.Store(body.Store)); err != nil {
		s.logger.Error("wishlist remove failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "wishlist unavailable")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

const trendingLimit = 10

// handleTrending serves the analytics read models. They lag the event stream;
// an empty answer just means nothing has been served yet.
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	phrases, err := s.trends.TopPhrases(r.Context(), trendingLimit)
	if err != nil {
		s.logger.Error("trending phrases read failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "trending unavailable")
		return
	}
	stores, err := s.trends.TopStores(r.Context(), trendingLimit)
	if err != nil {
		s.logger.Error("trending stores read failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, "trending unavailable")
		return
	}
	if phrases == nil {
		phrases = []trending.Entry{}
	}
	if stores == nil {
		stores = []trending.Entry{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"phrases": phrases, "stores": stores})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if identity, ok := auth.IdentityFrom(r.Context()); ok {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"user": map[string]string{
				"uid":   identity.UID,
				"email": identity.Email,
				"name":  identity.Name,
			},
		})
		return
	}
	guestID := auth.EnsureGuestID(w, r)
	writeJSON(w, r, http.StatusOK, map[string]any{"guest_id": guestID})
}

type sessionBody struct {
	IDToken string `json:"idToken" validate:"required,min=1"`
}

// handleAuthSession verifies a fresh Firebase ID token and folds the guest
// wishlist into the user's durable one.
func (s *Server) handleAuthSession(w http.ResponseWriter, r *http.Request) {
	if s.verifier == nil {
		writeError(w, r, http.StatusServiceUnavailable, "sign-in not configured")
		return
	}

	var body sessionBody
	if !s.decodeBody(w, r, &body) {
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid session payload: "+err.Error())
		return
	}

	identity, err := s.verifier.Verify(r.Context(), body.IDToken)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "invalid id token")
		return
	}

	if guestID := auth.GuestID(r); guestID != "" {
		if err := s.wishlists.MergeGuestIntoUser(r.Context(), guestID, identity.UID); err != nil {
			s.logger.Error("guest wishlist merge failed", slog.Any("error", err))
		}
		auth.ClearGuestCookie(w)
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"ok": true, "uid": identity.UID})
}

func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearGuestCookie(w)
	auth.EnsureGuestID(w, r)
	writeJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// actor resolves who owns wishlist state for this request: a verified user id
// or a guest cookie (minted on demand).
func (s *Server) actor(w http.ResponseWriter, r *http.Request) (userID, guestID string) {
	if identity, ok := auth.IdentityFrom(r.Context()); ok {
		return identity.UID, ""
	}
	return "", auth.EnsureGuestID(w, r)
}

// decodeBody decodes a JSON body, transparently handling gzip-compressed
// requests. Returns false after writing the error response.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	reader := io.Reader(r.Body)
	if enc := r.Header.Get("Content-Encoding"); strings.EqualFold(enc, "gzip") {
		gr, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "failed to decompress gzip body")
			return false
		}
		defer gr.Close()
		reader = gr
	}
	if err := json.NewDecoder(reader).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(status)
		gw := gzip.NewWriter(w)
		defer gw.Close()
		_ = json.NewEncoder(gw).Encode(payload)
		return
	}

	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"error": message})
}

// clipRunes shortens s to at most n runes; a byte index could split a
// multi-byte character.
func clipRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
