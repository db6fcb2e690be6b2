package auth

import (
	"os"
	"testing"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/web/session"
)

func TestMain(m *testing.M) {
	session.Init(memory.New())
	os.Exit(m.Run())
}

type seeded struct {
	db     *gorm.DB
	svc    *Service
	admin  *models.User
	editor *models.User
}

func newSeeded(t *testing.T) seeded {
	t.Helper()

	db := dbtest.New(t)
	svc := NewService(db)
	require.NoError(t, svc.SeedRoles())

	adminRole, err := svc.RoleByName(RoleAdmin)
	require.NoError(t, err)

	editorRole, err := svc.RoleByName(RoleEditor)
	require.NoError(t, err)

	local := NewLocalProvider(db)

	admin, err := local.CreateUser("admin", "admin@example.com", "secret-admin", "Admin", adminRole.ID)
	require.NoError(t, err)

	editor, err := local.CreateUser("editor", "editor@example.com", "secret-editor", "Editor", editorRole.ID)
	require.NoError(t, err)

	return seeded{db: db, svc: svc, admin: admin, editor: editor}
}
