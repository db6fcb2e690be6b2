package daemon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
	"github.com/atik-theme/atik-assistant/internal/db/models"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/widget/categoryboxes"
)

func TestSeedCreatesAdminOnce(t *testing.T) {
	t.Setenv(EnvAdminPassword, "first-password")

	db := dbtest.New(t)
	require.NoError(t, seed(db))
	require.NoError(t, seed(db))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, adminUsername, users[0].Username)

	user, err := auth.NewLocalProvider(db).Authenticate(adminUsername, "first-password")
	require.NoError(t, err)

	ok, err := auth.NewService(db).HasPermission(user.ID, auth.PermThemeSwitch)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSeedGeneratesPassword(t *testing.T) {
	t.Setenv(EnvAdminPassword, "")

	db := dbtest.New(t)
	require.NoError(t, seed(db))

	_, err := auth.NewLocalProvider(db).Authenticate(adminUsername, "")
	assert.Error(t, err)
}

func TestServicesWireWidgetHost(t *testing.T) {
	cfg := &config.Config{
		Title:    "Atik",
		Cache:    config.Cache{Driver: "memory"},
		Theme:    config.Theme{Active: "atik"},
		Sidebars: []config.Sidebar{{ID: "home-sections", Name: "Home Sections"}},
	}

	deps, views, err := services(cfg, dbtest.New(t))
	require.NoError(t, err)
	require.NotNil(t, views)
	require.True(t, deps.Valid())

	_, ok := deps.Widgets.Registry().Get(categoryboxes.ID)
	assert.True(t, ok)

	p, err := deps.Widgets.Create(context.Background(), categoryboxes.ID, "home-sections")
	require.NoError(t, err)

	out, err := deps.Widgets.RenderSidebar(context.Background(), "home-sections", host.RenderOptions{})
	require.NoError(t, err)
	assert.Empty(t, out, "boxes without features render nothing")
	assert.NotZero(t, p.ID)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}
