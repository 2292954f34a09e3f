// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	applicationsfeature "github.com/edumate/edumate-server/internal/app/features/applications"
	assignmentsfeature "github.com/edumate/edumate-server/internal/app/features/assignments"
	authfeature "github.com/edumate/edumate-server/internal/app/features/auth"
	classesfeature "github.com/edumate/edumate-server/internal/app/features/classes"
	enrollmentsfeature "github.com/edumate/edumate-server/internal/app/features/enrollments"
	feedbackfeature "github.com/edumate/edumate-server/internal/app/features/feedback"
	healthfeature "github.com/edumate/edumate-server/internal/app/features/health"
	paymentsfeature "github.com/edumate/edumate-server/internal/app/features/payments"
	statsfeature "github.com/edumate/edumate-server/internal/app/features/stats"
	submissionsfeature "github.com/edumate/edumate-server/internal/app/features/submissions"
	usersfeature "github.com/edumate/edumate-server/internal/app/features/users"
	"github.com/edumate/edumate-server/internal/app/system/auth"
	"github.com/edumate/edumate-server/internal/app/system/authz"
	"github.com/edumate/edumate-server/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// EduMate builds the token issuer and the three access guards, then
// mounts the feature routers. Each feature receives the guards it
// needs, so the route files read as the access policy.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	issuer := token.NewIssuer(appCfg.JWTSecret, appCfg.JWTIssuer)

	requireToken := auth.RequireToken(issuer)
	requireAdmin := authz.RequireAdmin(db)
	requireTeacher := authz.RequireTeacher(db)

	// Stripe's client key is process-global.
	paymentsEnabled := appCfg.StripeSecretKey != ""
	if paymentsEnabled {
		stripe.Key = appCfg.StripeSecretKey
	} else {
		logger.Warn("stripe_secret_key not set, payment intents disabled")
	}

	r := chi.NewRouter()

	// Health and liveness endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/", healthHandler.ServeRoot)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Token issuing
	authHandler := authfeature.NewHandler(issuer, logger)
	r.Mount("/jwt", authfeature.Routes(authHandler))

	// Users and role management
	usersHandler := usersfeature.NewHandler(db, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, requireToken, requireAdmin))

	// Teacher applications and the approval workflow
	applicationsHandler := applicationsfeature.NewHandler(db, logger)
	r.Mount("/applications", applicationsfeature.Routes(applicationsHandler, requireToken, requireAdmin))

	// Classes: teacher CRUD, admin review, public catalog, single view
	classesHandler := classesfeature.NewHandler(db, logger)
	r.Mount("/classes", classesfeature.Routes(classesHandler, requireToken, requireAdmin, requireTeacher))
	r.Mount("/class", classesfeature.SingleRoutes(classesHandler, requireToken))
	r.Mount("/allclasses", classesfeature.PublicRoutes(classesHandler))

	// Assignments
	assignmentsHandler := assignmentsfeature.NewHandler(db, logger)
	r.Mount("/assignments", assignmentsfeature.Routes(assignmentsHandler, requireToken, requireTeacher))

	// Enrollments
	enrollmentsHandler := enrollmentsfeature.NewHandler(db, logger)
	r.Mount("/enrollments", enrollmentsfeature.Routes(enrollmentsHandler, requireToken))

	// Submissions
	submissionsHandler := submissionsfeature.NewHandler(db, logger)
	r.Mount("/submissions", submissionsfeature.Routes(submissionsHandler, requireToken, requireTeacher))

	// Class feedback
	feedbackHandler := feedbackfeature.NewHandler(db, logger)
	r.Mount("/feedback", feedbackfeature.Routes(feedbackHandler, requireToken))

	// Stripe payment intents
	paymentsHandler := paymentsfeature.NewHandler(paymentsEnabled, logger)
	r.Mount("/create-payment-intent", paymentsfeature.Routes(paymentsHandler, requireToken))

	// Admin dashboard numbers
	statsHandler := statsfeature.NewHandler(db, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler, requireToken, requireAdmin))

	return r, nil
}
