// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EduMate.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: EDUMATE_MONGO_URI, EDUMATE_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "edumate", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "jwt_secret", Default: "", Desc: "HMAC secret for signing access tokens (required outside dev)"},
	{Name: "jwt_issuer", Default: "edumate", Desc: "Issuer claim on issued tokens"},

	{Name: "stripe_secret_key", Default: "", Desc: "Stripe secret key (blank disables payments)"},
}

// devJWTSecret is used when no jwt_secret is configured in dev so the
// server still starts for local work. Never accepted outside dev.
const devJWTSecret = "dev-only-change-me-please-0123456789ABCDEF"

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, EDUMATE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EDUMATE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		JWTIssuer: appValues.String("jwt_issuer"),

		StripeSecretKey: appValues.String("stripe_secret_key"),
	}

	if appCfg.JWTSecret == "" && coreCfg.Env == "dev" {
		logger.Warn("jwt_secret not set, using the dev default")
		appCfg.JWTSecret = devJWTSecret
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// EduMate validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and refuses to start
// outside dev without a JWT secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required when env is %q", coreCfg.Env)
	}
	if coreCfg.Env != "dev" && appCfg.JWTSecret == devJWTSecret {
		return fmt.Errorf("jwt_secret must not be the dev default when env is %q", coreCfg.Env)
	}

	return nil
}
