package models

import "time"

// User is the backend registry record kept in sync with the identity
// provider via /users/sync.
type User struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	FirebaseUID string    `json:"firebaseUid"`
	IsBlocked   bool      `json:"isBlocked"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
