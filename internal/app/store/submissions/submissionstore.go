package submissionstore

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

// ErrUncounted reports that the submission was inserted but the parent
// class's total_submission increment failed.
var ErrUncounted = errors.New("submission inserted but class counter not updated")

type Store struct {
	c       *mongo.Collection
	classes *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("submissions"),
		classes: db.Collection("classes"),
	}
}

// Create inserts the submission, then increments the parent class's
// total_submission. Same sequencing contract as the other child
// stores: increment only after the insert reports an id, ErrUncounted
// when the increment fails afterwards.
func (s *Store) Create(ctx context.Context, sub models.Submission) (models.Submission, error) {
	sub.ID = primitive.NewObjectID()
	sub.StudentEmail = normalize.Email(sub.StudentEmail)
	sub.CreatedAt = time.Now()

	res, err := s.c.InsertOne(ctx, sub)
	if err != nil {
		return models.Submission{}, err
	}
	if res.InsertedID == nil {
		return models.Submission{}, errors.New("insert reported no id")
	}

	_, err = s.classes.UpdateOne(ctx,
		bson.M{"_id": sub.ClassID},
		bson.M{"$inc": bson.M{"total_submission": 1}})
	if err != nil {
		return sub, ErrUncounted
	}
	return sub, nil
}

// ListByClass returns one page of a class's submissions.
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID, p paging.Params) ([]models.Submission, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{"class_id": classID}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	subs := []models.Submission{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CountByClass returns the number of submissions under a class.
func (s *Store) CountByClass(ctx context.Context, classID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"class_id": classID})
}
