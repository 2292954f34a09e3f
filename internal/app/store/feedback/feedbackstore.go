package feedbackstore

import (
	"context"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("feedback")}
}

// Create inserts a feedback document.
func (s *Store) Create(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	f.ID = primitive.NewObjectID()
	f.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Feedback{}, err
	}
	return f, nil
}

// List returns one page of feedback, optionally filtered by class.
// Pass primitive.NilObjectID for classID to list across all classes.
func (s *Store) List(ctx context.Context, classID primitive.ObjectID, p paging.Params) ([]models.Feedback, error) {
	filter := bson.M{}
	if classID != primitive.NilObjectID {
		filter["class_id"] = classID
	}

	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.Feedback{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
