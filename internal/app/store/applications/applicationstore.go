package applicationstore

import (
	"context"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/normalize"
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
	return &Store{c: db.Collection("applications")}
}

// Create inserts a teacher application. Status is forced to Pending
// regardless of what the client posted.
func (s *Store) Create(ctx context.Context, a models.Application) (models.Application, error) {
	a.ID = primitive.NewObjectID()
	a.UserEmail = normalize.Email(a.UserEmail)
	a.Status = models.ApplicationPending
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Application{}, err
	}
	return a, nil
}

// GetByID loads an application by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var a models.Application
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns one page of applications in insertion order.
func (s *Store) List(ctx context.Context, p paging.Params) ([]models.Application, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	apps := []models.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Count returns the total number of applications.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// StatusRow is the projection returned by StatusesByEmail.
type StatusRow struct {
	Status string `bson:"status" json:"status"`
}

// StatusesByEmail returns only the status field of every application
// the given user has filed.
func (s *Store) StatusesByEmail(ctx context.Context, email string) ([]StatusRow, error) {
	find := options.Find().SetProjection(bson.M{"status": 1, "_id": 0})
	cur, err := s.c.Find(ctx, bson.M{"user_email": normalize.Email(email)}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []StatusRow{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus updates an application's status and reports how many
// documents were modified. Re-applying the stored status reports zero;
// the approval workflow relies on that to keep its cascade single-shot.
// The filter excludes already-matching documents so the updated_at
// touch cannot make a repeat call count as a modification.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": status}},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
