package enrollmentstore

import (
	"context"
	"errors"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/normalize"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUncounted reports that the enrollment was inserted but the parent
// class's total_enrollment increment failed.
var ErrUncounted = errors.New("enrollment inserted but class counter not updated")

type Store struct {
	c       *mongo.Collection
	classes *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("enrollments"),
		classes: db.Collection("classes"),
	}
}

// Create inserts the enrollment, then increments the parent class's
// total_enrollment. The increment runs only after the insert has
// reported a generated id; an increment failure returns the inserted
// enrollment together with ErrUncounted.
func (s *Store) Create(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	e.ID = primitive.NewObjectID()
	e.StudentEmail = normalize.Email(e.StudentEmail)
	e.CreatedAt = time.Now()

	res, err := s.c.InsertOne(ctx, e)
	if err != nil {
		return models.Enrollment{}, err
	}
	if res.InsertedID == nil {
		return models.Enrollment{}, errors.New("insert reported no id")
	}

	_, err = s.classes.UpdateOne(ctx,
		bson.M{"_id": e.ClassID},
		bson.M{"$inc": bson.M{"total_enrollment": 1}})
	if err != nil {
		return e, ErrUncounted
	}
	return e, nil
}

// ListByStudent returns one page of a student's enrollments.
func (s *Store) ListByStudent(ctx context.Context, email string, p paging.Params) ([]models.Enrollment, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{"student_email": normalize.Email(email)}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	enrollments := []models.Enrollment{}
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// CountByClass returns the number of enrollments under a class.
func (s *Store) CountByClass(ctx context.Context, classID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"class_id": classID})
}
