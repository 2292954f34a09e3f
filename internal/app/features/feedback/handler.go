// internal/app/features/feedback/handler.go
package feedback

import (
	"context"
	"net/http"

	feedbackstore "github.com/edumate/edumate-server/internal/app/store/feedback"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Feedback.
type Handler struct {
	Store *feedbackstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Feedback handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: feedbackstore.New(db), Log: logger}
}

// HandleCreate handles POST /feedback.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ClassID    string  `json:"class_id"`
		ClassTitle string  `json:"class_title"`
		Name       string  `json:"name"`
		Image      string  `json:"image"`
		Rating     float64 `json:"rating"`
		Text       string  `json:"text"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}

	classID, err := primitive.ObjectIDFromHex(body.ClassID)
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Feedback{
		ClassID:    classID,
		ClassTitle: body.ClassTitle,
		Name:       body.Name,
		Image:      body.Image,
		Rating:     body.Rating,
		Text:       body.Text,
	})
	if err != nil {
		h.Log.Error("feedback create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleList handles GET /feedback. A class_id query, when present,
// narrows the list to a single class; the site's landing page calls
// this without one.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	classID := primitive.NilObjectID
	if raw := query.Get(r, "class_id"); raw != "" {
		var err error
		classID, err = primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.BadRequest(w, "invalid class id")
			return
		}
	}
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Store.List(ctx, classID, p)
	if err != nil {
		h.Log.Error("feedback list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, rows)
}
