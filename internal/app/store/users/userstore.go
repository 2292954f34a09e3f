package userstore

import (
	"context"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/normalize"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// CreateIfAbsent inserts a user keyed by email, or returns the existing
// document when one is already there. inserted=false means the email
// was taken and nothing was written; the count of users with that email
// stays at one no matter how many times this is called. A concurrent
// insert racing past the lookup is caught by the unique email index and
// resolved by re-reading the winner.
func (s *Store) CreateIfAbsent(ctx context.Context, u models.User) (models.User, bool, error) {
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)

	var existing models.User
	err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Decode(&existing)
	if err == nil {
		return existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, false, err
	}

	u.ID = primitive.NewObjectID()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			if ferr := s.c.FindOne(ctx, bson.M{"email": u.Email}).Decode(&existing); ferr == nil {
				return existing, false, nil
			}
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// GetByEmail looks up a user by normalized email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns one page of users in insertion order.
func (s *Store) List(ctx context.Context, p paging.Params) ([]models.User, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// SetRole updates a user's role and reports how many documents were
// modified. Setting a role the user already has reports zero; the
// filter excludes already-matching documents so the updated_at touch
// cannot make a repeat call count as a modification.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "role": bson.M{"$ne": role}},
		bson.M{"$set": bson.M{
			"role":       role,
			"updated_at": time.Now(),
		}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// CountByEmail reports how many user documents carry the given email.
// Used by tests to assert the create-idempotence invariant.
func (s *Store) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"email": normalize.Email(email)})
}
