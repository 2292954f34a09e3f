package submissionstore_test

import (
	"testing"

	classstore "github.com/edumate/edumate-server/internal/app/store/classes"
	submissionstore "github.com/edumate/edumate-server/internal/app/store/submissions"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_IncrementsClassCounter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissionstore.New(db)
	classes := classstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateAcceptedClass(ctx, "Graded", "t@example.com")
	a := fx.CreateAssignment(ctx, cl.ID, "Essay")

	sub, err := store.Create(ctx, models.Submission{
		ClassID:      cl.ID,
		AssignmentID: a.ID,
		StudentEmail: "Student@Example.com",
		Link:         "https://example.com/essay.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sub.StudentEmail != "student@example.com" {
		t.Errorf("student email not normalized: got %q", sub.StudentEmail)
	}

	got, err := classes.GetByID(ctx, cl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TotalSubmission != 1 {
		t.Errorf("total_submission: got %d, want 1", got.TotalSubmission)
	}
}

func TestListByClass(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissionstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fx.CreateAcceptedClass(ctx, "Graded", "t@example.com")
	a := fx.CreateAssignment(ctx, cl.ID, "Essay")

	for _, email := range []string{"s1@example.com", "s2@example.com"} {
		if _, err := store.Create(ctx, models.Submission{
			ClassID:      cl.ID,
			AssignmentID: a.ID,
			StudentEmail: email,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rows, err := store.ListByClass(ctx, cl.ID, paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListByClass failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}

	empty, err := store.ListByClass(ctx, primitive.NewObjectID(), paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("ListByClass for unknown class failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown class rows: got %d, want 0", len(empty))
	}
}
