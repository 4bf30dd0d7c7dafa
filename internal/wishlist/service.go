package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"trendella-backend/internal/model"
	"trendella-backend/internal/sanitize"
)

// Service routes wishlist operations to the guest or user backend and merges
// a guest list into the user list at login.
type Service struct {
	guests *GuestStore
	users  Store
	logger *slog.Logger
}

// NewService creates a wishlist service. users is the durable backend.
func NewService(guests *GuestStore, users Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{guests: guests, users: users, logger: logger}
}

func (s *Service) store(userID string) Store {
	if userID != "" {
		return s.users
	}
	return s.guests
}

// Save snapshots a product into the actor's wishlist. The affiliate URL is
// re-sanitized before persisting; a product that fails it is rejected.
func (s *Service) Save(ctx context.Context, userID, guestID string, product model.NormalizedProduct) error {
	product.AffiliateURL = sanitize.AffiliateURL(product.AffiliateURL)
	if !sanitize.IsHTTPSURL(product.AffiliateURL) {
		return fmt.Errorf("product %s has no usable affiliate url", product.ID)
	}
	return s.store(userID).Save(ctx, actorID(userID, guestID), product)
}

func (s *Service) Remove(ctx context.Context, userID, guestID, productID string, store model.Store) error {
	return s.store(userID).Remove(ctx, actorID(userID, guestID), productID, store)
}

func (s *Service) List(ctx context.Context, userID, guestID string) ([]model.NormalizedProduct, error) {
	return s.store(userID).List(ctx, actorID(userID, guestID))
}

// MergeGuestIntoUser drains the guest wishlist into the user's durable one.
// Called once on login; an empty guest list is a no-op.
func (s *Service) MergeGuestIntoUser(ctx context.Context, guestID, userID string) error {
	if guestID == "" || userID == "" {
		return nil
	}
	products, err := s.guests.Drain(ctx, guestID)
	if err != nil {
		return fmt.Errorf("drain guest wishlist: %w", err)
	}
	for _, product := range products {
		if err := s.users.Save(ctx, userID, product); err != nil {
			return fmt.Errorf("merge product %s: %w", product.ID, err)
		}
	}
	if len(products) > 0 {
		s.logger.Info("merged guest wishlist into user wishlist",
			slog.String("user_id", userID), slog.Int("count", len(products)))
	}
	return nil
}

func actorID(userID, guestID string) string {
	if userID != "" {
		return userID
	}
	return guestID
}
