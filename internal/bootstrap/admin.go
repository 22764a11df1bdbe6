package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/francoms3/user-management-service/internal/config"
	"github.com/francoms3/user-management-service/internal/service"
)

// EnsureAdmin seeds an admin user on startup when credentials are configured.
// The store starts empty on every boot, so the seed runs each time; it is
// skipped entirely when ADMIN_EMAIL is unset.
func EnsureAdmin(lc fx.Lifecycle, cfg config.Config, users *service.UserService, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return ensureAdmin(ctx, cfg, users, logger)
		},
	})
}

func ensureAdmin(ctx context.Context, cfg config.Config, users *service.UserService, logger *zap.Logger) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	if _, err := users.GetUserByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	}

	user, err := users.CreateUser(ctx, service.CreateUserInput{
		Email:     cfg.AdminEmail,
		FirstName: "Admin",
		LastName:  "User",
		Password:  cfg.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("bootstrap create admin: %w", err)
	}

	if logger != nil {
		logger.Info("bootstrap admin user created",
			zap.String("email", user.Email),
			zap.String("user_id", user.ID),
		)
	}
	return nil
}
