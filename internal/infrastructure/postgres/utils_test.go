package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

func TestParseID(t *testing.T) {
	id, ok := parseID("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	require.True(t, ok)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	for _, bad := range []string{"", "abc", "item-1", "6f9619ff-8b86-d011-b42d"} {
		_, ok := parseID(bad)
		assert.False(t, ok, bad)
	}
}

// Con un Querier nil cualquier consulta entraría en pánico: un id que no es UUID se resuelve
// como "no encontrado" antes de llegar a la base.
func TestRepos_IDNoUUIDEsNoEncontrado(t *testing.T) {
	ctx := context.Background()

	items := NewInventoryItemRepository(nil)
	it, err := items.GetForUpdate(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, it)
	it, err = items.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, it)
	assert.ErrorIs(t, items.UpdateStock(ctx, "abc", 1), domain.ErrNotFound)
	assert.ErrorIs(t, items.Update(ctx, &entity.InventoryItem{ID: "abc"}), domain.ErrNotFound)
	assert.ErrorIs(t, items.Delete(ctx, "abc"), domain.ErrNotFound)

	churches := NewChurchRepository(nil)
	c, err := churches.GetByID(ctx, "sede")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, churches.Update(ctx, &entity.Church{ID: "sede"}), domain.ErrNotFound)
	assert.ErrorIs(t, churches.Delete(ctx, "sede"), domain.ErrNotFound)

	members := NewMemberRepository(nil)
	m, err := members.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, members.Update(ctx, &entity.Member{ID: "123"}), domain.ErrNotFound)
	assert.ErrorIs(t, members.Delete(ctx, "123"), domain.ErrNotFound)

	transfers := NewTransferRepository(nil)
	tr, err := transfers.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, tr)

	movs, err := NewMovementRepository(nil).List(ctx, repository.MovementFilter{ItemID: "x"})
	require.NoError(t, err)
	assert.Empty(t, movs)
}
