// internal/domain/models/class.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class status values. New classes start Pending and an admin moves them
// to Accepted or Rejected; only Accepted classes show up publicly.
const (
	ClassPending  = "Pending"
	ClassAccepted = "Accepted"
	ClassRejected = "Rejected"
)

// Class is a course offered by a teacher.
//
// The three counters are only ever incremented, each by the creation of
// the corresponding child document (assignment, enrollment, submission).
type Class struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	TitleCI      string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	TeacherName  string             `bson:"teacher_name" json:"teacher_name"`
	TeacherEmail string             `bson:"teacher_email" json:"teacher_email"`
	Price        float64            `bson:"price" json:"price"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Status       string             `bson:"status" json:"status"` // Pending | Accepted | Rejected

	AssignmentCount int64 `bson:"assignment_count" json:"assignment_count"`
	TotalEnrollment int64 `bson:"total_enrollment" json:"total_enrollment"`
	TotalSubmission int64 `bson:"total_submission" json:"total_submission"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
