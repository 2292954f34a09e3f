package feedbackstore_test

import (
	"testing"

	feedbackstore "github.com/edumate/edumate-server/internal/app/store/feedback"
	"github.com/edumate/edumate-server/internal/app/system/paging"
	"github.com/edumate/edumate-server/internal/domain/models"
	"github.com/edumate/edumate-server/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := feedbackstore.New(db)
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateAcceptedClass(ctx, "Reviewed", "t@example.com")
	b := fx.CreateAcceptedClass(ctx, "Quiet", "t@example.com")

	if _, err := store.Create(ctx, models.Feedback{
		ClassID:    a.ID,
		ClassTitle: a.Title,
		Name:       "Happy Student",
		Rating:     5,
		Text:       "Great class",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Feedback{ClassID: b.ID, Rating: 3}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// All classes.
	all, err := store.List(ctx, primitive.NilObjectID, paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all rows: got %d, want 2", len(all))
	}

	// One class only.
	scoped, err := store.List(ctx, a.ID, paging.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("scoped List failed: %v", err)
	}
	if len(scoped) != 1 {
		t.Fatalf("scoped rows: got %d, want 1", len(scoped))
	}
	if scoped[0].Text != "Great class" {
		t.Errorf("text: got %q, want %q", scoped[0].Text, "Great class")
	}
}
