// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on User documents. A freshly signed-up user has no
// role; "Teacher" is granted by the application approval workflow and
// "Admin" by the admin promotion route.
const (
	RoleTeacher = "Teacher"
	RoleAdmin   = "Admin"
)

// User represents every account on the platform: students, teachers,
// and admins. Users are created on first sign-in and never deleted.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"` // "" | Teacher | Admin

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
