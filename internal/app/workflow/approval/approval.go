// Package approval implements the teacher-application review workflow.
//
// Approving an application must be reflected as a Teacher role on the
// owning user. There is no multi-document transaction: the promotion
// runs only when the status update reports that it actually modified a
// document, which keeps duplicate or retried approval calls from
// re-running the cascade once the application is already Approved. Two
// callers racing between the two updates can still interleave; that is
// the accepted consistency level here, best-effort rather than
// exactly-once.
package approval

import (
	"context"
	"errors"
	"fmt"

	applicationstore "github.com/edumate/edumate-server/internal/app/store/applications"
	userstore "github.com/edumate/edumate-server/internal/app/store/users"
	"github.com/edumate/edumate-server/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrPromotionFailed reports a partial success: the application is now
// Approved but the owning user's role could not be updated. The two
// collections are inconsistent until the approval is retried (the
// retry modifies nothing on the application and is therefore safe, but
// it also skips the cascade, so the fix is the admin promotion route
// or a manual re-run after flipping the status back).
var ErrPromotionFailed = errors.New("application approved but user promotion failed")

// Workflow coordinates the applications and users collections.
type Workflow struct {
	apps  *applicationstore.Store
	users *userstore.Store
	log   *zap.Logger
}

func New(apps *applicationstore.Store, users *userstore.Store, logger *zap.Logger) *Workflow {
	return &Workflow{apps: apps, users: users, log: logger}
}

// Result reports what the workflow did.
type Result struct {
	Modified int64 `json:"modified"` // application documents changed (0 or 1)
	Promoted bool  `json:"promoted"` // whether the role cascade ran
}

// Approve sets the application's status to Approved. If and only if
// that update modified a document, the owning user is promoted to
// Teacher. The application update's outcome is returned to the caller
// whether or not the cascade ran.
func (wf *Workflow) Approve(ctx context.Context, id primitive.ObjectID) (Result, error) {
	modified, err := wf.apps.SetStatus(ctx, id, models.ApplicationApproved)
	if err != nil {
		return Result{}, fmt.Errorf("update application status: %w", err)
	}
	res := Result{Modified: modified}
	if modified == 0 {
		// Already Approved (or no such document): nothing changed, so
		// the cascade must not run again.
		return res, nil
	}

	app, err := wf.apps.GetByID(ctx, id)
	if err != nil {
		wf.log.Error("approval: application vanished after status update",
			zap.String("application_id", id.Hex()), zap.Error(err))
		return res, ErrPromotionFailed
	}

	userID, err := primitive.ObjectIDFromHex(app.UserID)
	if err != nil {
		wf.log.Error("approval: application carries malformed user id",
			zap.String("application_id", id.Hex()),
			zap.String("user_id", app.UserID))
		return res, ErrPromotionFailed
	}

	if _, err := wf.users.SetRole(ctx, userID, models.RoleTeacher); err != nil {
		wf.log.Error("approval: user promotion failed",
			zap.String("application_id", id.Hex()),
			zap.String("user_id", app.UserID), zap.Error(err))
		return res, ErrPromotionFailed
	}

	res.Promoted = true
	return res, nil
}

// Reject sets the application's status to Rejected. No cascade.
func (wf *Workflow) Reject(ctx context.Context, id primitive.ObjectID) (Result, error) {
	modified, err := wf.apps.SetStatus(ctx, id, models.ApplicationRejected)
	if err != nil {
		return Result{}, fmt.Errorf("update application status: %w", err)
	}
	return Result{Modified: modified}, nil
}
