// internal/app/features/classes/handler.go
package classes

import (
	"context"
	"net/http"

	classstore "github.com/edumate/edumate-server/internal/app/store/classes"
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

// Handler is the feature-level entry point for Classes.
type Handler struct {
	Store *classstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Classes handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: classstore.New(db), Log: logger}
}

// HandleCreate handles POST /classes (teacher). The teacher_email is
// taken from the verified claims, not the body, so a teacher cannot
// file classes under someone else's name.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body models.Class
	if !httpjson.Decode(w, r, &body) {
		return
	}
	if body.Title == "" {
		httpjson.BadRequest(w, "title is required")
		return
	}
	if email, ok := auth.CurrentEmail(r); ok {
		body.TeacherEmail = email
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, body)
	if err != nil {
		h.Log.Error("class create failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.Created(w, httpjson.M{"inserted_id": created.ID.Hex()})
}

// HandleListAll handles GET /classes (admin).
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.Count(ctx)
	if err != nil {
		h.Log.Error("class count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	classes, err := h.Store.ListAll(ctx, p)
	if err != nil {
		h.Log.Error("class list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"total": total, "classes": classes})
}

// HandleListByTeacher handles GET /classes/{email} (teacher).
func (h *Handler) HandleListByTeacher(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.CountByTeacher(ctx, email)
	if err != nil {
		h.Log.Error("class count failed", zap.String("teacher", email), zap.Error(err))
		httpjson.Internal(w)
		return
	}
	classes, err := h.Store.ListByTeacher(ctx, email, p)
	if err != nil {
		h.Log.Error("class list failed", zap.String("teacher", email), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"total": total, "classes": classes})
}

// HandleListAccepted handles GET /allclasses/accepted: the public
// catalog of classes an admin has accepted.
func (h *Handler) HandleListAccepted(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.CountAccepted(ctx)
	if err != nil {
		h.Log.Error("accepted class count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	classes, err := h.Store.ListAccepted(ctx, p)
	if err != nil {
		h.Log.Error("accepted class list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"total": total, "classes": classes})
}

// HandleGetByID handles GET /class/{id}.
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cl, err := h.Store.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "class not found")
		return
	}
	if err != nil {
		h.Log.Error("class lookup failed", zap.String("class_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, cl)
}

// HandleUpdate handles PATCH /classes/{id} (teacher). Only the caller's
// own class is matched; a wrong owner modifies nothing.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	var body struct {
		Title       string  `json:"title"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}

	email, _ := auth.CurrentEmail(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := h.Store.Update(ctx, id, email, classstore.ClassUpdate{
		Title:       body.Title,
		Price:       body.Price,
		Description: body.Description,
		Image:       body.Image,
	})
	if err != nil {
		h.Log.Error("class update failed", zap.String("class_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"modified": modified})
}

// HandleDelete handles DELETE /classes/{id} (teacher).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	email, _ := auth.CurrentEmail(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id, email)
	if err != nil {
		h.Log.Error("class delete failed", zap.String("class_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "class not found")
		return
	}

	httpjson.OK(w, httpjson.M{"deleted": deleted})
}

// HandleApprove handles PATCH /classes/approve/{id} (admin).
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ClassAccepted)
}

// HandleReject handles PATCH /classes/reject/{id} (admin).
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ClassRejected)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid class id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := h.Store.SetStatus(ctx, id, status)
	if err != nil {
		h.Log.Error("class status update failed",
			zap.String("class_id", id.Hex()), zap.String("status", status), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"modified": modified})
}
