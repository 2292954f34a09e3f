// internal/app/features/applications/handler.go
package applications

import (
	"context"
	"errors"
	"net/http"

	applicationstore "github.com/edumate/edumate-server/internal/app/store/applications"
	userstore "github.com/edumate/edumate-server/internal/app/store/users"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/app/workflow/approval"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for teacher Applications.
type Handler struct {
	Store    *applicationstore.Store
	Workflow *approval.Workflow
	Log      *zap.Logger
}

// NewHandler constructs an Applications handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	apps := applicationstore.New(db)
	return &Handler{
		Store:    apps,
		Workflow: approval.New(apps, userstore.New(db), logger),
		Log:      logger,
	}
}

// HandleCreate handles POST /applications.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body models.Application
	if !httpjson.Decode(w, r, &body) {
		return
	}
	if body.UserID == "" || body.UserEmail == "" {
		httpjson.BadRequest(w, "user_id and user_email are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, body)
	if err != nil {
		h.Log.Error("application create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleList handles GET /applications (admin): one page of all
// applications.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.Count(ctx)
	if err != nil {
		h.Log.Error("application count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	apps, err := h.Store.List(ctx, p)
	if err != nil {
		h.Log.Error("application list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"total": total, "applications": apps})
}

// HandleStatusesByEmail handles GET /applications/{email}: only the
// status fields of the caller's applications, matching what the
// dashboard polls for.
func (h *Handler) HandleStatusesByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Store.StatusesByEmail(ctx, email)
	if err != nil {
		h.Log.Error("application status lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, rows)
}

// HandleApprove handles PATCH /applications/approve/{id} (admin).
// The role cascade is the approval workflow's concern; a partial
// success (status flipped, promotion failed) surfaces as a 500 so the
// inconsistency is visible rather than silent.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid application id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, err := h.Workflow.Approve(ctx, id)
	if errors.Is(err, approval.ErrPromotionFailed) {
		httpjson.Write(w, http.StatusInternalServerError, httpjson.M{
			"message":  "application approved but user promotion failed",
			"modified": res.Modified,
		})
		return
	}
	if err != nil {
		h.Log.Error("application approve failed", zap.String("application_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, res)
}

// HandleReject handles PATCH /applications/reject/{id} (admin).
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid application id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Workflow.Reject(ctx, id)
	if err != nil {
		h.Log.Error("application reject failed", zap.String("application_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, res)
}
