package users_test

import (
	"net/http"
	"testing"

	usersfeature "github.com/edumate/edumate-server/internal/app/features/users"
	"github.com/edumate/edumate-server/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleCreate_FreshAndDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := usersfeature.NewHandler(db, zap.NewNop())

	// First sign-in inserts.
	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var first struct {
		InsertedID string `json:"inserted_id"`
		Inserted   bool   `json:"inserted"`
	}
	rec.DecodeJSON(t, &first)
	if !first.Inserted || first.InsertedID == "" {
		t.Errorf("first create: got %+v, want inserted=true with an id", first)
	}

	// Every later sign-in is a no-op.
	req = testutil.NewJSONRequest(t, "POST", "/users", map[string]any{
		"name":  "Ada Again",
		"email": "ADA@example.com",
	})
	rec = testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var second struct {
		InsertedID string `json:"inserted_id"`
		Inserted   bool   `json:"inserted"`
	}
	rec.DecodeJSON(t, &second)
	if second.Inserted {
		t.Error("duplicate create must report inserted=false")
	}
	if second.InsertedID != first.InsertedID {
		t.Errorf("duplicate create id: got %s, want %s", second.InsertedID, first.InsertedID)
	}
}

func TestHandleCreate_MissingEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := usersfeature.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{"name": "No Email"})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleGetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := usersfeature.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateUser(ctx, "Grace", "grace@example.com", "")

	req := testutil.NewAuthenticatedRequest("GET", "/users/grace@example.com", "grace@example.com")
	req = testutil.WithChiURLParam(req, "email", "grace@example.com")
	rec := testutil.NewRecorder()
	h.HandleGetByEmail(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	rec.DecodeJSON(t, &got)
	if got.Email != "grace@example.com" || got.Name != "Grace" {
		t.Errorf("user: got %+v", got)
	}

	// Unknown email is a 404, not an empty 200.
	req = testutil.NewAuthenticatedRequest("GET", "/users/nobody@example.com", "nobody@example.com")
	req = testutil.WithChiURLParam(req, "email", "nobody@example.com")
	rec = testutil.NewRecorder()
	h.HandleGetByEmail(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandlePromoteAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := usersfeature.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := fx.CreateUser(ctx, "Soon Admin", "soon@example.com", "")

	req := testutil.NewAuthenticatedRequest("PATCH", "/users/admin/"+u.ID.Hex(), "boss@example.com")
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandlePromoteAdmin(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Modified int64 `json:"modified"`
	}
	rec.DecodeJSON(t, &got)
	if got.Modified != 1 {
		t.Errorf("modified: got %d, want 1", got.Modified)
	}

	req = testutil.NewAuthenticatedRequest("PATCH", "/users/admin/not-hex", "boss@example.com")
	req = testutil.WithChiURLParam(req, "id", "not-hex")
	rec = testutil.NewRecorder()
	h.HandlePromoteAdmin(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}
