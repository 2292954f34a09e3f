// internal/app/features/stats/handler.go
package stats

import (
	"context"
	"net/http"

	"github.com/edumate/edumate-server/internal/app/store/queries/classstats"
	"github.com/edumate/edumate-server/internal/app/system/httpjson"
	"github.com/edumate/edumate-server/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// topClassLimit caps the most-enrolled list on the admin dashboard.
const topClassLimit = 6

// Handler serves the admin dashboard numbers.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a Stats handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleGet handles GET /stats. Counts are best-effort; the two
// aggregations are not, since a dashboard with silently empty charts
// is worse than an error.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	counts := classstats.FetchCounts(ctx, h.DB)

	top, err := classstats.TopClassesByEnrollment(ctx, h.DB, topClassLimit)
	if err != nil {
		h.Log.Error("stats: top classes aggregation failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	byStatus, err := classstats.ClassesByStatus(ctx, h.DB)
	if err != nil {
		h.Log.Error("stats: status breakdown failed", zap.Error(err))
		httpjson.Internal(w)
		return
	}

	httpjson.OK(w, httpjson.M{
		"counts":            counts,
		"top_classes":       top,
		"classes_by_status": byStatus,
	})
}
