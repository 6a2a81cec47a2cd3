package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleamarket/internal/common"
)

// End-to-end flow over one store: two users, a listing, and an interest
// exchange.
func TestScenario_PublishAndExpressInterest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, "alice@x.com", "pw1", "Alice", "wx:alice")
	require.NoError(t, err)
	_, err = env.auth.Register(ctx, "bob@y.com", "pw2", "Bob", "qq:bob")
	require.NoError(t, err)

	aliceToken, _, err := env.auth.Login(ctx, "alice@x.com", "pw1")
	require.NoError(t, err)
	chair, err := env.items.Publish(ctx, aliceToken, "Chair", "a wooden chair", 20.0, nil)
	require.NoError(t, err)

	bobToken, bob, err := env.auth.Login(ctx, "bob@y.com", "pw2")
	require.NoError(t, err)

	contact, err := env.items.ExpressInterest(ctx, bobToken, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, "wx:alice", contact)

	interactions, err := env.store.Interactions.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, bob.ID, interactions[0].BuyerID)
}

// Admin deletes a seller; the seller's listing survives with a dangling
// reference, and interest in it fails cleanly.
func TestScenario_AdminDeletesSeller(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	adminToken, _ := loginAsAdmin(t, env, "admin@sys.com")
	aliceToken, alice := registerAndLogin(t, env, "alice@x.com", "pw1")
	bobToken, _ := registerAndLogin(t, env, "bob@y.com", "pw2")

	chair, err := env.items.Publish(ctx, aliceToken, "Chair", "", 20, nil)
	require.NoError(t, err)

	removed, err := env.admin.DeleteUser(ctx, adminToken, alice.ID)
	require.NoError(t, err)
	require.True(t, removed)

	items, err := env.admin.ListItems(ctx, adminToken)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = env.items.ExpressInterest(ctx, bobToken, chair.ID)
	assert.ErrorIs(t, err, common.ErrSellerNotFound)
}
