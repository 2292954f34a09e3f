package classstore_test

import (
	"testing"

	classstore "github.com/edumate/edumate-server/internal/app/store/classes"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
)

func TestCreate_ForcesPendingAndZeroCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl, err := store.Create(ctx, models.Class{
		Title:           "Naïve Bayes",
		TeacherName:     "Rev. Bayes",
		TeacherEmail:    "Bayes@Example.com",
		Price:           49.99,
		Status:          models.ClassAccepted, // client tries to skip review
		AssignmentCount: 42,
		TotalEnrollment: 42,
		TotalSubmission: 42,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cl.Status != models.ClassPending {
		t.Errorf("status: got %q, want %q", cl.Status, models.ClassPending)
	}
	if cl.AssignmentCount != 0 || cl.TotalEnrollment != 0 || cl.TotalSubmission != 0 {
		t.Errorf("counters not zeroed: %d/%d/%d", cl.AssignmentCount, cl.TotalEnrollment, cl.TotalSubmission)
	}
	if cl.TitleCI != "naive bayes" {
		t.Errorf("title_ci: got %q, want %q", cl.TitleCI, "naive bayes")
	}
	if cl.TeacherEmail != "bayes@example.com" {
		t.Errorf("teacher email not normalized: got %q", cl.TeacherEmail)
	}
}

func TestListAccepted_ExcludesPendingAndRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateClass(ctx, "Visible", "t@example.com", models.ClassAccepted)
	fx.CreateClass(ctx, "Waiting", "t@example.com", models.ClassPending)
	fx.CreateClass(ctx, "Declined", "t@example.com", models.ClassRejected)

	rows, err := store.ListAccepted(ctx, paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListAccepted failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("accepted classes: got %d, want 1", len(rows))
	}
	if rows[0].Title != "Visible" {
		t.Errorf("title: got %q, want %q", rows[0].Title, "Visible")
	}

	n, err := store.CountAccepted(ctx)
	if err != nil {
		t.Fatalf("CountAccepted failed: %v", err)
	}
	if n != 1 {
		t.Errorf("CountAccepted: got %d, want 1", n)
	}
}

func TestUpdate_ScopedToOwningTeacher(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Original", "owner@example.com", models.ClassPending)

	// Someone else's email must not touch the document.
	modified, err := store.Update(ctx, cl.ID, "intruder@example.com", classstore.ClassUpdate{Title: "Hijacked"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if modified != 0 {
		t.Errorf("modified by non-owner: got %d, want 0", modified)
	}

	modified, err = store.Update(ctx, cl.ID, "OWNER@example.com", classstore.ClassUpdate{
		Title: "Renamed",
		Price: 9.99,
	})
	if err != nil {
		t.Fatalf("Update by owner failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("modified by owner: got %d, want 1", modified)
	}

	got, err := store.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Renamed" || got.Price != 9.99 {
		t.Errorf("update not applied: title=%q price=%v", got.Title, got.Price)
	}
	if got.Status != models.ClassPending {
		t.Errorf("update must not change status, got %q", got.Status)
	}
}

func TestDelete_ScopedToOwningTeacher(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Doomed", "owner@example.com", models.ClassPending)

	deleted, err := store.Delete(ctx, cl.ID, "intruder@example.com")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted by non-owner: got %d, want 0", deleted)
	}

	deleted, err = store.Delete(ctx, cl.ID, "owner@example.com")
	if err != nil {
		t.Fatalf("Delete by owner failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted by owner: got %d, want 1", deleted)
	}
}

func TestSetStatus_RepeatIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Review Me", "t@example.com", models.ClassPending)

	modified, err := store.SetStatus(ctx, cl.ID, models.ClassAccepted)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("modified: got %d, want 1", modified)
	}

	modified, err = store.SetStatus(ctx, cl.ID, models.ClassAccepted)
	if err != nil {
		t.Fatalf("second SetStatus failed: %v", err)
	}
	if modified != 0 {
		t.Errorf("modified on repeat: got %d, want 0", modified)
	}
}

func TestCounterIncrements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateClass(ctx, "Counted", "t@example.com", models.ClassAccepted)

	if err := store.IncAssignmentCount(ctx, cl.ID); err != nil {
		t.Fatalf("IncAssignmentCount failed: %v", err)
	}
	if err := store.IncTotalEnrollment(ctx, cl.ID); err != nil {
		t.Fatalf("IncTotalEnrollment failed: %v", err)
	}
	if err := store.IncTotalEnrollment(ctx, cl.ID); err != nil {
		t.Fatalf("IncTotalEnrollment failed: %v", err)
	}
	if err := store.IncTotalSubmission(ctx, cl.ID); err != nil {
		t.Fatalf("IncTotalSubmission failed: %v", err)
	}

	got, err := store.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AssignmentCount != 1 {
		t.Errorf("assignment_count: got %d, want 1", got.AssignmentCount)
	}
	if got.TotalEnrollment != 2 {
		t.Errorf("total_enrollment: got %d, want 2", got.TotalEnrollment)
	}
	if got.TotalSubmission != 1 {
		t.Errorf("total_submission: got %d, want 1", got.TotalSubmission)
	}
}
