package apiclient

import (
	"context"
	"fmt"

	"github.com/trendora/storefront-api/models"
)

type syncUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	FirebaseUID string `json:"firebaseUid"`
}

// SyncUser pushes the identity resulting from a provider login into the
// backend user registry. A 403 means the account is blocked and comes back
// as models.ErrAccountBlocked.
func (c *Client) SyncUser(ctx context.Context, name, email, firebaseUID string) error {
	if name == "" {
		name = "User"
	}
	return c.do(ctx, "POST", "/users/sync", "", syncUserRequest{
		Name:        name,
		Email:       email,
		FirebaseUID: firebaseUID,
	}, nil)
}

// Users lists the registry for the admin console.
func (c *Client) Users(ctx context.Context, adminToken string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, "GET", "/users", adminToken, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// BlockUser toggles the blocked flag on a registry record.
func (c *Client) BlockUser(ctx context.Context, adminToken, id string) error {
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	return c.do(ctx, "PUT", "/users/"+id+"/block", adminToken, nil, nil)
}
