package daemon

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/uniuri"
)

const (
	// EnvAdminPassword sets the password of the first admin account.
	EnvAdminPassword = "ATIK_ADMIN_PASSWORD"

	adminUsername = "admin"
	adminEmail    = "admin@localhost"

	generatedPasswordLen = 16
)

// seed creates the roles and, on an empty user table, the first admin.
func seed(db *gorm.DB) error {
	authService := auth.NewService(db)
	if err := authService.SeedRoles(); err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}

	if count > 0 {
		return nil
	}

	role, err := authService.RoleByName(auth.RoleAdmin)
	if err != nil {
		return err
	}

	password := os.Getenv(EnvAdminPassword)
	generated := password == ""

	if generated {
		password = uniuri.NewLen(generatedPasswordLen)
	}

	if _, err = auth.NewLocalProvider(db).CreateUser(adminUsername, adminEmail, password, "Administrator", role.ID); err != nil {
		return errors.Wrap(err, "failed to create admin user")
	}

	event := log.Warn().Str("username", adminUsername)
	if generated {
		event = event.Str("password", password)
	}

	event.Msg("created initial admin account, change its password")

	return nil
}
