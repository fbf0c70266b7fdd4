// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("overrides", n))
	}

	if appCfg.AdminEmail != "" {
		if err := ensureAdmin(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdmin promotes the configured account to admin if it exists. The
// account is not created here: provisioning goes through the users endpoint
// so the password is always set deliberately.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		if userstore.IsNotFound(err) {
			logger.Warn("admin_email set but no such user exists yet",
				zap.String("email", email))
			return nil
		}
		return err
	}

	if u.Role == tenant.RoleAdmin {
		return nil
	}

	res, err := deps.MongoDatabase.Collection("users").UpdateByID(ctx, u.ID,
		bson.M{"$set": bson.M{"role": tenant.RoleAdmin}, "$unset": bson.M{"clientId": ""}})
	if err != nil {
		return err
	}
	if res.ModifiedCount > 0 {
		logger.Info("promoted user to admin", zap.String("email", email))
	}
	return nil
}
