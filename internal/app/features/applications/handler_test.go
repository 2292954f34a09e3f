package applications_test

import (
	"net/http"
	"testing"

	applicationsfeature "github.com/edumate/edumate-server/internal/app/features/applications"
	userstore "github.com/edumate/edumate-server/internal/app/store/users"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleCreate_RequiresUserFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := applicationsfeature.NewHandler(db, zap.NewNop())

	req := testutil.NewAuthenticatedJSONRequest(t, "POST", "/applications", "x@example.com",
		map[string]any{"name": "No IDs"})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleApprove_PromotesAndIsSingleShot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := applicationsfeature.NewHandler(db, zap.NewNop())
	users := userstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Hopeful", "hopeful@example.com", "")
	app := fx.CreateApplication(ctx, u, models.ApplicationPending)

	approve := func() *testutil.ResponseRecorder {
		req := testutil.NewAuthenticatedRequest("PATCH", "/applications/approve/"+app.ID.Hex(), "admin@example.com")
		req = testutil.WithChiURLParam(req, "id", app.ID.Hex())
		rec := testutil.NewRecorder()
		h.HandleApprove(rec, req)
		return rec
	}

	rec := approve()
	rec.AssertStatus(t, http.StatusOK)

	var first struct {
		Modified int64 `json:"modified"`
		Promoted bool  `json:"promoted"`
	}
	rec.DecodeJSON(t, &first)
	if first.Modified != 1 || !first.Promoted {
		t.Errorf("first approve: got %+v, want modified=1 promoted=true", first)
	}

	promoted, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if promoted.Role != models.RoleTeacher {
		t.Errorf("role after approval: got %q, want %q", promoted.Role, models.RoleTeacher)
	}

	// Approving again changes nothing and skips the cascade.
	rec = approve()
	rec.AssertStatus(t, http.StatusOK)

	var second struct {
		Modified int64 `json:"modified"`
		Promoted bool  `json:"promoted"`
	}
	rec.DecodeJSON(t, &second)
	if second.Modified != 0 || second.Promoted {
		t.Errorf("second approve: got %+v, want modified=0 promoted=false", second)
	}
}

func TestHandleApprove_PartialFailureIsVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := applicationsfeature.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Application whose user id cannot be parsed back to an ObjectID:
	// approval flips the status but the promotion cannot run.
	created, err := h.Store.Create(ctx, models.Application{
		UserID:    "not-a-hex-id",
		UserEmail: "broken@example.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("PATCH", "/applications/approve/"+created.ID.Hex(), "admin@example.com")
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleApprove(rec, req)
	rec.AssertStatus(t, http.StatusInternalServerError)

	var body struct {
		Message  string `json:"message"`
		Modified int64  `json:"modified"`
	}
	rec.DecodeJSON(t, &body)
	if body.Message != "application approved but user promotion failed" {
		t.Errorf("message: got %q", body.Message)
	}
	if body.Modified != 1 {
		t.Errorf("modified: got %d, want 1", body.Modified)
	}
}

func TestHandleReject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := applicationsfeature.NewHandler(db, zap.NewNop())
	users := userstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Hopeful", "hopeful@example.com", "")
	app := fx.CreateApplication(ctx, u, models.ApplicationPending)

	req := testutil.NewAuthenticatedRequest("PATCH", "/applications/reject/"+app.ID.Hex(), "admin@example.com")
	req = testutil.WithChiURLParam(req, "id", app.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleReject(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	got, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Role != "" {
		t.Errorf("rejection must not change the role, got %q", got.Role)
	}
}
