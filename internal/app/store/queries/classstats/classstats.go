// Package classstats holds the fixed aggregation pipelines behind the
// admin dashboard: headline counts, the most-enrolled classes, and the
// class review queue broken down by status.
package classstats

import (
	"context"

	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals shown on the admin dashboard.
// Intentionally tolerant: on error a counter stays 0.
type Counts struct {
	Users       int64 `json:"users"`
	Teachers    int64 `json:"teachers"`
	Classes     int64 `json:"classes"`
	Enrollments int64 `json:"enrollments"`
}

// FetchCounts returns the headline totals.
func FetchCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	if n, err := db.Collection("users").CountDocuments(ctx, bson.M{}); err == nil {
		out.Users = n
	}
	if n, err := db.Collection("users").CountDocuments(ctx, bson.M{"role": models.RoleTeacher}); err == nil {
		out.Teachers = n
	}
	if n, err := db.Collection("classes").CountDocuments(ctx, bson.M{}); err == nil {
		out.Classes = n
	}
	if n, err := db.Collection("enrollments").CountDocuments(ctx, bson.M{}); err == nil {
		out.Enrollments = n
	}

	return out
}

// TopClass is one row of the most-enrolled list.
type TopClass struct {
	ID              interface{} `bson:"_id" json:"id"`
	Title           string      `bson:"title" json:"title"`
	TeacherName     string      `bson:"teacher_name" json:"teacher_name"`
	TotalEnrollment int64       `bson:"total_enrollment" json:"total_enrollment"`
}

// TopClassesByEnrollment returns the n Accepted classes with the most
// enrollments, highest first.
func TopClassesByEnrollment(ctx context.Context, db *mongo.Database, n int64) ([]TopClass, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.ClassAccepted}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_enrollment", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: n}},
		{{Key: "$project", Value: bson.M{
			"title":            1,
			"teacher_name":     1,
			"total_enrollment": 1,
		}}},
	}

	cur, err := db.Collection("classes").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []TopClass{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// StatusCount is one row of the group-and-count breakdown.
type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// ClassesByStatus groups the classes collection by status and counts
// each bucket. Feeds the admin review queue summary.
func ClassesByStatus(ctx context.Context, db *mongo.Database) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := db.Collection("classes").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []StatusCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
