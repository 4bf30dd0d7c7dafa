// Package auth resolves the acting identity for a request: a Firebase user
// when a valid ID token is presented, otherwise an anonymous guest tracked by
// cookie. Recommendation quality never depends on identity; it only scopes
// wishlists and session memory.
package auth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// Identity is a verified signed-in user.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier checks a Firebase ID token and returns the identity it
// asserts.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

// FirebaseVerifier verifies tokens against a Firebase project.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Firebase Admin SDK for projectID.
// Credentials come from the ambient service account (ADC).
func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return Identity{}, fmt.Errorf("verify id token: %w", err)
	}

	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return Identity{}, fmt.Errorf("token carries no uid")
	}

	identity := Identity{UID: uid}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = strings.TrimSpace(email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = strings.TrimSpace(name)
	}
	if identity.Name == "" {
		identity.Name = identity.Email
	}
	if identity.Name == "" {
		identity.Name = uid
	}
	return identity, nil
}
