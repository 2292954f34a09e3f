package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role ("" for students).
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin inserts an admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleAdmin)
}

// CreateTeacher inserts a teacher user.
func (f *Fixtures) CreateTeacher(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleTeacher)
}

// CreateApplication inserts a teacher application for the given user.
func (f *Fixtures) CreateApplication(ctx context.Context, user models.User, status string) models.Application {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.Application{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID.Hex(),
		UserEmail: user.Email,
		Name:      user.Name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// CreateClass inserts a class with the given status and zeroed counters.
func (f *Fixtures) CreateClass(ctx context.Context, title, teacherEmail, status string) models.Class {
	f.t.Helper()

	now := time.Now().UTC()
	class := models.Class{
		ID:           primitive.NewObjectID(),
		Title:        title,
		TitleCI:      text.Fold(title),
		TeacherName:  "Test Teacher",
		TeacherEmail: teacherEmail,
		Price:        19.99,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("classes").InsertOne(ctx, class); err != nil {
		f.t.Fatalf("failed to create test class: %v", err)
	}
	return class
}

// CreateAcceptedClass inserts a publicly visible class.
func (f *Fixtures) CreateAcceptedClass(ctx context.Context, title, teacherEmail string) models.Class {
	f.t.Helper()
	return f.CreateClass(ctx, title, teacherEmail, models.ClassAccepted)
}

// CreateAssignment inserts an assignment under a class without touching
// the class counter (counter behavior is what the store tests exercise).
func (f *Fixtures) CreateAssignment(ctx context.Context, classID primitive.ObjectID, title string) models.Assignment {
	f.t.Helper()

	a := models.Assignment{
		ID:        primitive.NewObjectID(),
		ClassID:   classID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateEnrollment inserts an enrollment without touching the counter.
func (f *Fixtures) CreateEnrollment(ctx context.Context, classID primitive.ObjectID, studentEmail string) models.Enrollment {
	f.t.Helper()

	e := models.Enrollment{
		ID:           primitive.NewObjectID(),
		ClassID:      classID,
		StudentEmail: studentEmail,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := f.db.Collection("enrollments").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return e
}
