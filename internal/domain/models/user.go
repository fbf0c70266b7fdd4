// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents platform admins and client users.
//
// NOTE:
//   - A client user is always scoped to a tenant via ClientID.
//   - An admin's ClientID is empty and ignored by scoping.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Name     string             `bson:"name" json:"name"`
	Role     string             `bson:"role" json:"role"` // admin | client
	ClientID string             `bson:"clientId,omitempty" json:"clientId,omitempty"`
	Status   string             `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	LastLogin *time.Time `bson:"last_login" json:"last_login"`
}
