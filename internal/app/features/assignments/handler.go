// internal/app/features/assignments/handler.go
package assignments

import (
	"context"
	"errors"
	"net/http"

	assignmentstore "github.com/edumate/edumate-server/internal/app/store/assignments"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Assignments.
type Handler struct {
	Store *assignmentstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an Assignments handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: assignmentstore.New(db), Log: logger}
}

// HandleCreate handles POST /assignments (teacher). The insert and the
// parent counter increment are sequenced in the store; a counter
// failure after a successful insert comes back as ErrUncounted and is
// surfaced as a 500 that still names the inserted assignment.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClassID     string `json:"class_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}

	classID, err := primitive.ObjectIDFromHex(body.ClassID)
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}
	if body.Title == "" {
		httpjson.BadRequest(w, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Assignment{
		ClassID:     classID,
		Title:       body.Title,
		Description: body.Description,
		Deadline:    body.Deadline,
	})
	if errors.Is(err, assignmentstore.ErrUncounted) {
		h.Log.Error("assignment counter increment failed",
			zap.String("assignment_id", created.ID.Hex()),
			zap.String("class_id", classID.Hex()))
		httpjson.Write(w, http.StatusInternalServerError, httpjson.M{
			"message":     "failed to increase assignment count",
			"inserted_id": created.ID.Hex(),
		})
		return
	}
	if err != nil {
		h.Log.Error("assignment create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleList handles GET /assignments: all assignments, or one class's
// when the class_id query parameter is present.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if hex := query.Get(r, "class_id"); hex != "" {
		classID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			httpjson.BadRequest(w, "invalid class id")
			return
		}
		rows, err := h.Store.ListByClass(ctx, classID, p)
		if err != nil {
			h.Log.Error("assignment list failed", zap.String("class_id", hex), zap.Error(err))
			httpjson.Internal(w)
			return
		}
		httpjson.OK(w, rows)
		return
	}

	rows, err := h.Store.List(ctx, p)
	if err != nil {
		h.Log.Error("assignment list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	httpjson.OK(w, rows)
}
