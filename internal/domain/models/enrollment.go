// internal/domain/models/enrollment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment records a student joining a class after a completed payment.
// Creating one increments the parent class's total_enrollment.
type Enrollment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID       primitive.ObjectID `bson:"class_id" json:"class_id"`
	StudentEmail  string             `bson:"student_email" json:"student_email"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
