// Package authz provides the authorization gates. Each gate runs after
// the token guard, performs exactly one users lookup by the claimed
// email, and compares the stored role against the required one. Gate
// decisions are never cached across requests.
package authz

import (
	"context"
	"net/http"

	"github.com/edumate/edumate-server/internal/app/system/auth"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/normalize"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixed forbidden messages, naming the role the route requires.
const (
	AdminOnlyMessage   = "forbidden access, this api is only for the admin"
	TeacherOnlyMessage = "forbidden access, this api is only for the teacher"
)

// RequireAdmin allows the request through only when the caller's stored
// role is Admin.
func RequireAdmin(db *mongo.Database) func(http.Handler) http.Handler {
	return requireRole(db, models.RoleAdmin, AdminOnlyMessage)
}

// RequireTeacher allows the request through only when the caller's
// stored role is Teacher.
func RequireTeacher(db *mongo.Database) func(http.Handler) http.Handler {
	return requireRole(db, models.RoleTeacher, TeacherOnlyMessage)
}

func requireRole(db *mongo.Database, role, forbiddenMessage string) func(http.Handler) http.Handler {
	users := db.Collection("users")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := auth.CurrentEmail(r)
			if !ok {
				// No verified claims in context: the token guard did
				// not run, or the token carried no email. Fail closed.
				httpjson.Unauthenticated(w)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			var u struct {
				Role string `bson:"role"`
			}
			err := users.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
			if err != nil || u.Role != role {
				httpjson.Forbidden(w, forbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
