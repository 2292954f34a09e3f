// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Index creation is idempotent; errors
are aggregated so every problem is visible and startup can fail fast.

The unique index on users.email is what makes the idempotent
user-create safe under concurrent sign-ins: the second insert fails as
a duplicate instead of writing a second document.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureApplications(ctx, db); err != nil {
		problems = append(problems, "applications: "+err.Error())
	}
	if err := ensureClasses(ctx, db); err != nil {
		problems = append(problems, "classes: "+err.Error())
	}
	if err := ensureAssignments(ctx, db); err != nil {
		problems = append(problems, "assignments: "+err.Error())
	}
	if err := ensureEnrollments(ctx, db); err != nil {
		problems = append(problems, "enrollments: "+err.Error())
	}
	if err := ensureSubmissions(ctx, db); err != nil {
		problems = append(problems, "submissions: "+err.Error())
	}
	if err := ensureFeedback(ctx, db); err != nil {
		problems = append(problems, "feedback: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func create(ctx context.Context, db *mongo.Database, coll string, idx ...mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, idx)
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "users", mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
}

func ensureApplications(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "applications",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "user_email", Value: 1}},
			Options: options.Index().SetName("by_user_email"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("by_status"),
		},
	)
}

func ensureClasses(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "classes",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "teacher_email", Value: 1}},
			Options: options.Index().SetName("by_teacher_email"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "total_enrollment", Value: -1}},
			Options: options.Index().SetName("by_status_enrollment"),
		},
	)
}

func ensureAssignments(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "assignments", mongo.IndexModel{
		Keys:    bson.D{{Key: "class_id", Value: 1}},
		Options: options.Index().SetName("by_class"),
	})
}

func ensureEnrollments(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "enrollments",
		mongo.IndexModel{
			Keys:    bson.D{{Key: "student_email", Value: 1}},
			Options: options.Index().SetName("by_student"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "class_id", Value: 1}, {Key: "student_email", Value: 1}},
			Options: options.Index().SetName("by_class_student"),
		},
	)
}

func ensureSubmissions(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "submissions", mongo.IndexModel{
		Keys:    bson.D{{Key: "class_id", Value: 1}, {Key: "assignment_id", Value: 1}},
		Options: options.Index().SetName("by_class_assignment"),
	})
}

func ensureFeedback(ctx context.Context, db *mongo.Database) error {
	return create(ctx, db, "feedback", mongo.IndexModel{
		Keys:    bson.D{{Key: "class_id", Value: 1}},
		Options: options.Index().SetName("by_class"),
	})
}
