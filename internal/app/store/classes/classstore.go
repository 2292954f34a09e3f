package classstore

import (
	"context"
	"time"

	"github.com/edumate/edumate-server/internal/app/system/normalize"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("classes")}
}

// Create inserts a class. Status is forced to Pending and all counters
// start at zero regardless of what the client posted.
func (s *Store) Create(ctx context.Context, cl models.Class) (models.Class, error) {
	cl.ID = primitive.NewObjectID()
	cl.TitleCI = text.Fold(cl.Title)
	cl.TeacherEmail = normalize.Email(cl.TeacherEmail)
	cl.Status = models.ClassPending
	cl.AssignmentCount = 0
	cl.TotalEnrollment = 0
	cl.TotalSubmission = 0
	now := time.Now()
	cl.CreatedAt = now
	cl.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, cl); err != nil {
		return models.Class{}, err
	}
	return cl, nil
}

// GetByID loads a class by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var cl models.Class
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// List returns one page of classes matching filter in insertion order.
func (s *Store) list(ctx context.Context, filter bson.M, p paging.Params) ([]models.Class, error) {
	find := p.ApplyToFind(options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	cur, err := s.c.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	classes := []models.Class{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// ListAll returns one page of all classes (admin view).
func (s *Store) ListAll(ctx context.Context, p paging.Params) ([]models.Class, error) {
	return s.list(ctx, bson.M{}, p)
}

// ListByTeacher returns one page of a teacher's classes.
func (s *Store) ListByTeacher(ctx context.Context, email string, p paging.Params) ([]models.Class, error) {
	return s.list(ctx, bson.M{"teacher_email": normalize.Email(email)}, p)
}

// ListAccepted returns one page of publicly visible classes.
func (s *Store) ListAccepted(ctx context.Context, p paging.Params) ([]models.Class, error) {
	return s.list(ctx, bson.M{"status": models.ClassAccepted}, p)
}

// Count returns the total number of classes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountAccepted returns the number of Accepted classes.
func (s *Store) CountAccepted(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": models.ClassAccepted})
}

// CountByTeacher returns the number of classes owned by a teacher.
func (s *Store) CountByTeacher(ctx context.Context, email string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"teacher_email": normalize.Email(email)})
}

// ClassUpdate holds the teacher-editable fields of a class.
type ClassUpdate struct {
	Title       string
	Price       float64
	Description string
	Image       string
}

// Update rewrites the teacher-editable fields of a class owned by the
// given teacher. Status and counters are not touchable through here.
// Reports how many documents were modified.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, teacherEmail string, upd ClassUpdate) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "teacher_email": normalize.Email(teacherEmail)},
		bson.M{"$set": bson.M{
			"title":       upd.Title,
			"title_ci":    text.Fold(upd.Title),
			"price":       upd.Price,
			"description": upd.Description,
			"image":       upd.Image,
			"updated_at":  time.Now(),
		}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetStatus moves a class to Accepted or Rejected (admin review).
// Re-applying the stored status reports zero modified.
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

// Delete removes a class owned by the given teacher. Returns the number
// of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID, teacherEmail string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "teacher_email": normalize.Email(teacherEmail)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// IncAssignmentCount bumps assignment_count by one.
func (s *Store) IncAssignmentCount(ctx context.Context, id primitive.ObjectID) error {
	return s.inc(ctx, id, "assignment_count")
}

// IncTotalEnrollment bumps total_enrollment by one.
func (s *Store) IncTotalEnrollment(ctx context.Context, id primitive.ObjectID) error {
	return s.inc(ctx, id, "total_enrollment")
}

// IncTotalSubmission bumps total_submission by one.
func (s *Store) IncTotalSubmission(ctx context.Context, id primitive.ObjectID) error {
	return s.inc(ctx, id, "total_submission")
}

func (s *Store) inc(ctx context.Context, id primitive.ObjectID, field string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	return err
}
