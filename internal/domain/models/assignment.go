// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is coursework posted by a teacher under a class. Creating
// one increments the parent class's assignment_count.
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID     primitive.ObjectID `bson:"class_id" json:"class_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Deadline    string             `bson:"deadline,omitempty" json:"deadline,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
