// internal/domain/models/submission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a student's answer to an assignment. Creating one
// increments the parent class's total_submission.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID      primitive.ObjectID `bson:"class_id" json:"class_id"`
	AssignmentID primitive.ObjectID `bson:"assignment_id" json:"assignment_id"`
	StudentEmail string             `bson:"student_email" json:"student_email"`
	Link         string             `bson:"link,omitempty" json:"link,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
