// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/edumate/edumate-server/internal/app/store/users"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Users.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Users handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: userstore.New(db), Log: logger}
}

// HandleCreate handles POST /users: the idempotent first-sign-in insert.
//
// A fresh email responds 201; an email that already has a document
// responds 200 with the existing id and inserted=false. Either way
// exactly one user document exists for the email afterwards.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photo_url"`
	}
	if !httpjson.Decode(w, r, &body) {
		return
	}
	if body.Email == "" {
		httpjson.BadRequest(w, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, inserted, err := h.Store.CreateIfAbsent(ctx, models.User{
		Name:     body.Name,
		Email:    body.Email,
		PhotoURL: body.PhotoURL,
	})
	if err != nil {
		h.Log.Error("user create failed", zap.String("email", body.Email), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	resp := httpjson.M{"inserted_id": u.ID.Hex(), "inserted": inserted}
	if inserted {
		httpjson.Created(w, resp)
		return
	}
	httpjson.OK(w, resp)
}

// HandleList handles GET /users (admin): one page of all users.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	total, err := h.Store.Count(ctx)
	if err != nil {
		h.Log.Error("user count failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}
	users, err := h.Store.List(ctx, p)
	if err != nil {
		h.Log.Error("user list failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"total": total, "users": users})
}

// HandleGetByEmail handles GET /users/{email}.
func (h *Handler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		httpjson.NotFound(w, "user not found")
		return
	}
	if err != nil {
		h.Log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, u)
}

// HandlePromoteAdmin handles PATCH /users/admin/{id} (admin): the role
// side-channel that makes another user an Admin.
func (h *Handler) HandlePromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := h.Store.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		h.Log.Error("admin promotion failed", zap.String("user_id", id.Hex()), zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{"modified": modified})
}
