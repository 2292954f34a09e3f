// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application status values. The only transitions are
// Pending -> Approved and Pending -> Rejected.
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// Application is a request by a user to become a teacher. Approving one
// promotes the owning user's role to Teacher (see workflow/approval).
//
// UserID holds the hex form of the owning User's ObjectID because the
// client submits it as a string; the approval workflow parses it back.
type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	UserEmail  string             `bson:"user_email" json:"user_email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Experience string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Status     string             `bson:"status" json:"status"` // Pending | Approved | Rejected

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
