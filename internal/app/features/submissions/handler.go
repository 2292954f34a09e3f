// internal/app/features/submissions/handler.go
package submissions

import (
	"context"
	"errors"
	"net/http"

	submissionstore "github.com/edumate/edumate-server/internal/app/store/submissions"
	"github.com/edumate/edumate-server/internal/app/system/auth"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Submissions.
type Handler struct {
	Store *submissionstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Submissions handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: submissionstore.New(db), Log: logger}
}

// HandleCreate handles POST /submissions. The student email comes from
// the verified claims, never the body.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClassID      string `json:"class_id"`
		AssignmentID string `json:"assignment_id"`
		Link         string `json:"link"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}

	classID, err := primitive.ObjectIDFromHex(body.ClassID)
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}
	assignmentID, err := primitive.ObjectIDFromHex(body.AssignmentID)
	if err != nil {
		httpjson.BadRequest(w, "invalid assignment id")
		return
	}

	email, ok := auth.CurrentEmail(r)
	if !ok {
		httpjson.Unauthenticated(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Submission{
		ClassID:      classID,
		AssignmentID: assignmentID,
		StudentEmail: email,
		Link:         body.Link,
	})
	if errors.Is(err, submissionstore.ErrUncounted) {
		h.Log.Error("submission counter increment failed",
			zap.String("submission_id", created.ID.Hex()),
			zap.String("class_id", classID.Hex()))
		httpjson.Write(w, http.StatusInternalServerError, httpjson.M{
			"message":     "failed to increase submission count",
			"inserted_id": created.ID.Hex(),
		})
		return
	}
	if err != nil {
		h.Log.Error("submission create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleListByClass handles GET /submissions?class_id=…, used by
// teachers reviewing turned-in work.
func (h *Handler) HandleListByClass(w http.ResponseWriter, r *http.Request) {
	classID, err := primitive.ObjectIDFromHex(query.Get(r, "class_id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.ListByClass(ctx, classID, p)
	if err != nil {
		h.Log.Error("submission list failed", zap.String("class_id", classID.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}
	total, err := h.Store.CountByClass(ctx, classID)
	if err != nil {
		h.Log.Error("submission count failed", zap.String("class_id", classID.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"submissions": rows, "total": total})
}
