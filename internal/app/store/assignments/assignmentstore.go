package assignmentstore

import (
	"context"
	"errors"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUncounted reports that the assignment document was inserted but
// the parent class's assignment_count increment failed. The child
// exists; the counter is stale. Callers surface this as an internal
// error carrying the inserted id so the inconsistency is reportable.
var ErrUncounted = errors.New("assignment inserted but class counter not updated")

type Store struct {
	c       *mongo.Collection
	classes *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("assignments"),
		classes: db.Collection("classes"),
	}
}

// Create inserts the assignment, then increments the parent class's
// assignment_count. The increment runs only after the insert has
// reported a generated id; if the increment fails the inserted
// assignment is returned together with ErrUncounted.
func (s *Store) Create(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()

	res, err := s.c.InsertOne(ctx, a)
	if err != nil {
		return models.Assignment{}, err
	}
	if res.InsertedID == nil {
		return models.Assignment{}, errors.New("insert reported no id")
	}

	_, err = s.classes.UpdateOne(ctx,
		bson.M{"_id": a.ClassID},
		bson.M{"$inc": bson.M{"assignment_count": 1}})
	if err != nil {
		return a, ErrUncounted
	}
	return a, nil
}

// ListByClass returns one page of a class's assignments in insertion order.
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID, p paging.Params) ([]models.Assignment, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{"class_id": classID}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assignments := []models.Assignment{}
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// List returns one page of all assignments in insertion order.
func (s *Store) List(ctx context.Context, p paging.Params) ([]models.Assignment, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assignments := []models.Assignment{}
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountByClass returns the number of assignments under a class.
func (s *Store) CountByClass(ctx context.Context, classID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"class_id": classID})
}
