package classes_test

import (
	"net/http"
	"testing"

	classesfeature "github.com/edumate/edumate-server/internal/app/features/classes"
	classstore "github.com/edumate/edumate-server/internal/app/store/classes"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestHandleCreate_OwnerComesFromClaims(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := classesfeature.NewHandler(db, zap.NewNop())
	store := classstore.New(db)

	req := testutil.NewAuthenticatedJSONRequest(t, "POST", "/classes", "prof@example.com",
		map[string]any{
			"title":         "Intro to Go",
			"price":         29.99,
			"teacher_email": "impostor@example.com", // must be ignored
			"status":        models.ClassAccepted,   // must be ignored
		})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var body struct {
		InsertedID string `json:"inserted_id"`
	}
	rec.DecodeJSON(t, &body)

	id, err := primitive.ObjectIDFromHex(body.InsertedID)
	if err != nil {
		t.Fatalf("inserted_id %q is not an ObjectID: %v", body.InsertedID, err)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TeacherEmail != "prof@example.com" {
		t.Errorf("teacher_email: got %q, want the claimed email", got.TeacherEmail)
	}
	if got.Status != models.ClassPending {
		t.Errorf("status: got %q, want %q", got.Status, models.ClassPending)
	}
}

func TestHandleUpdate_WrongOwnerModifiesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := classesfeature.NewHandler(db, zap.NewNop())
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Original", "owner@example.com", models.ClassPending)

	req := testutil.NewAuthenticatedJSONRequest(t, "PATCH", "/classes/"+cl.ID.Hex(), "intruder@example.com",
		map[string]any{"title": "Hijacked", "price": 0.01})
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleUpdate(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Modified int64 `json:"modified"`
	}
	rec.DecodeJSON(t, &body)
	if body.Modified != 0 {
		t.Errorf("modified: got %d, want 0", body.Modified)
	}

	got, err := store.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Original" {
		t.Errorf("title: got %q, want untouched", got.Title)
	}
}

func TestHandleDelete_WrongOwnerIs404(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := classesfeature.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Keep Me", "owner@example.com", models.ClassPending)

	req := testutil.NewAuthenticatedRequest("DELETE", "/classes/"+cl.ID.Hex(), "intruder@example.com")
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)

	req = testutil.NewAuthenticatedRequest("DELETE", "/classes/"+cl.ID.Hex(), "owner@example.com")
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec = testutil.NewRecorder()
	h.HandleDelete(rec, req)
	rec.AssertStatus(t, http.StatusOK)
}

func TestHandleGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := classesfeature.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateAcceptedClass(ctx, "Findable", "t@example.com")

	req := testutil.NewAuthenticatedRequest("GET", "/class/"+cl.ID.Hex(), "s@example.com")
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleGetByID(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewAuthenticatedRequest("GET", "/class/"+primitive.NewObjectID().Hex(), "s@example.com")
	req = testutil.WithChiURLParam(req, "id", primitive.NewObjectID().Hex())
	rec = testutil.NewRecorder()
	h.HandleGetByID(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)

	req = testutil.NewAuthenticatedRequest("GET", "/class/junk", "s@example.com")
	req = testutil.WithChiURLParam(req, "id", "junk")
	rec = testutil.NewRecorder()
	h.HandleGetByID(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}
