package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/models"
)

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(dir)
	require.NoError(t, err)

	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Users.SaveAll(ctx, []models.User{{ID: 1, Email: "a@x.com"}}))
	require.NoError(t, s.Items.SaveAll(ctx, []models.Item{{ID: 1, Title: "Chair"}}))

	interactions, err := s.Interactions.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, interactions)

	users, err := s.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestStore_ArtifactPath(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		kind Kind
		want string
	}{
		{KindUser, "users.json"},
		{KindItem, "items.json"},
		{KindInteraction, "interactions.json"},
	}
	for _, tt := range tests {
		path, err := s.ArtifactPath(tt.kind)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(s.Dir(), tt.want), path)
	}
}

func TestStore_ArtifactPath_UnknownKind(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.ArtifactPath(Kind("banana"))
	assert.ErrorIs(t, err, common.ErrUnknownEntityKind)
}
