// internal/app/features/enrollments/handler.go
package enrollments

import (
	"context"
	"errors"
	"net/http"

	enrollmentstore "github.com/edumate/edumate-server/internal/app/store/enrollments"
	"github.com/edumate/edumate-server/internal/app/system/auth"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Enrollments.
type Handler struct {
	Store *enrollmentstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an Enrollments handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: enrollmentstore.New(db), Log: logger}
}

// HandleCreate handles POST /enrollments: the client calls this after
// its card payment completes, with the payment's transaction id. The
// student email comes from the verified claims.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClassID       string `json:"class_id"`
		TransactionID string `json:"transaction_id"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}

	classID, err := primitive.ObjectIDFromHex(body.ClassID)
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	email, ok := auth.CurrentEmail(r)
	if !ok {
		httpjson.Unauthenticated(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Enrollment{
		ClassID:       classID,
		StudentEmail:  email,
		TransactionID: body.TransactionID,
	})
	if errors.Is(err, enrollmentstore.ErrUncounted) {
		h.Log.Error("enrollment counter increment failed",
			zap.String("enrollment_id", created.ID.Hex()),
			zap.String("class_id", classID.Hex()))
		httpjson.Write(w, http.StatusInternalServerError, httpjson.M{
			"message":     "failed to increase enrollment count",
			"inserted_id": created.ID.Hex(),
		})
		return
	}
	if err != nil {
		h.Log.Error("enrollment create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleListByStudent handles GET /enrollments/{email}.
func (h *Handler) HandleListByStudent(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.ListByStudent(ctx, email, p)
	if err != nil {
		h.Log.Error("enrollment list failed", zap.String("student", email), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, rows)
}
