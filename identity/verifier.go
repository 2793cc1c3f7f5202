package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/trendora/storefront-api/models"
)

// Verifier validates Firebase ID tokens with the admin SDK. It is optional:
// when no credentials are configured the middleware falls back to a
// presence-only session check.
type Verifier struct {
	auth      *auth.Client
	projectID string
}

func NewVerifier(ctx context.Context, projectID, credentialsJSON string) (*Verifier, error) {
	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &Verifier{auth: client, projectID: projectID}, nil
}

// Verify checks the token signature and audience and returns the decoded
// token.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := v.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id token", models.ErrAuthFailed)
	}
	if token.Audience != v.projectID {
		return nil, fmt.Errorf("%w: token audience mismatch", models.ErrAuthFailed)
	}
	return token, nil
}
