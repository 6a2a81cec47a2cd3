package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleamarket/internal/config"
	"github.com/dmitrijs2005/fleamarket/internal/logging"
	"github.com/dmitrijs2005/fleamarket/internal/models"
)

func newTestApp(t *testing.T) (*App, *config.Config) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	a, err := NewApp(cfg, logging.NewDefault("error"))
	require.NoError(t, err)
	return a, cfg
}

func TestEnsureAdmin_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	a, cfg := newTestApp(t)

	require.NoError(t, a.EnsureAdmin(ctx))

	users, err := a.store.Users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, cfg.AdminEmail, users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	// The seeded account can actually log in.
	_, user, err := a.Auth.Login(ctx, cfg.AdminEmail, cfg.AdminSecret)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestEnsureAdmin_SecondRunSeedsNothing(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	require.NoError(t, a.EnsureAdmin(ctx))
	require.NoError(t, a.EnsureAdmin(ctx))

	users, err := a.store.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// Any existing user disables seeding, even a non-admin one.
func TestEnsureAdmin_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	_, err := a.Auth.Register(ctx, "alice@x.com", "pw1", "Alice", "wx:alice")
	require.NoError(t, err)

	require.NoError(t, a.EnsureAdmin(ctx))

	users, err := a.store.Users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleUser, users[0].Role)
}
