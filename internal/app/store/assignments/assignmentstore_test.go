package assignmentstore_test

import (
	"testing"

	assignmentstore "github.com/edumate/edumate-server/internal/app/store/assignments"
	classstore "github.com/edumate/edumate-server/internal/app/store/classes"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
)

func TestCreate_IncrementsClassCounter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	classes := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateAcceptedClass(ctx, "Counted", "t@example.com")

	a, err := store.Create(ctx, models.Assignment{
		ClassID:     cl.ID,
		Title:       "Week 1 Problem Set",
		Description: "Chapters 1 and 2",
		Deadline:    "2026-09-15",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.ID.IsZero() {
		t.Error("expected a generated id")
	}

	got, err := classes.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AssignmentCount != 1 {
		t.Errorf("assignment_count: got %d, want 1", got.AssignmentCount)
	}

	// A second assignment takes the counter to 2.
	if _, err := store.Create(ctx, models.Assignment{ClassID: cl.ID, Title: "Week 2"}); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	got, err = classes.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AssignmentCount != 2 {
		t.Errorf("assignment_count: got %d, want 2", got.AssignmentCount)
	}
}

func TestListByClass(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateAcceptedClass(ctx, "Mine", "t@example.com")
	other := fx.CreateAcceptedClass(ctx, "Other", "t@example.com")

	fx.CreateAssignment(ctx, cl.ID, "A1")
	fx.CreateAssignment(ctx, cl.ID, "A2")
	fx.CreateAssignment(ctx, other.ID, "B1")

	rows, err := store.ListByClass(ctx, cl.ID, paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListByClass failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	for _, a := range rows {
		if a.ClassID != cl.ID {
			t.Errorf("assignment %s belongs to class %s, want %s", a.ID.Hex(), a.ClassID.Hex(), cl.ID.Hex())
		}
	}

	n, err := store.CountByClass(ctx, cl.ID)
	if err != nil {
		t.Fatalf("CountByClass failed: %v", err)
	}
	if n != 2 {
		t.Errorf("CountByClass: got %d, want 2", n)
	}
}
