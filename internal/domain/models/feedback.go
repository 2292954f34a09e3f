// internal/domain/models/feedback.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is a student review of a class, shown on the public site.
type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID    primitive.ObjectID `bson:"class_id" json:"class_id"`
	ClassTitle string             `bson:"class_title,omitempty" json:"class_title,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating     float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Text       string             `bson:"text,omitempty" json:"text,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
