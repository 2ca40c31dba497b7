package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/auth"
)

// UserStore is what seeding needs from the user repository.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

// AdminAccount describes the bootstrap administrator.
type AdminAccount struct {
	Email    string
	Password string
}

// CreateDefaultData creates the admin account if it doesn't exist.
// An empty password skips seeding so no well-known credentials ship by default.
func CreateDefaultData(ctx context.Context, users UserStore, admin AdminAccount, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		lgr.Info().Msg("Admin seed credentials not configured, skipping default admin")
		return nil
	}

	exists, err := users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Default admin already exists")
		return nil
	}

	lgr.Info().Str("email", email).Msg("Creating default admin user...")
	hashedPassword, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	user := &models.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  hashedPassword,
		RoleType:  models.RoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Int64("userID", user.ID).Msg("Default admin user created")
	return nil
}
