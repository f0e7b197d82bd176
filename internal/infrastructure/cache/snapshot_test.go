package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/cache"
)

func TestSnapshot_CargaUnaVezHastaInvalidate(t *testing.T) {
	var s cache.Snapshot[int]
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{calls, calls}, nil
	}
	ctx := context.Background()

	a, err := s.Get(ctx, load)
	require.NoError(t, err)
	b, err := s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, a)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls)

	s.Invalidate()
	c, err := s.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, c)
	assert.Equal(t, 2, s.Loads())
}

func TestSnapshot_ErrorNoSeGuarda(t *testing.T) {
	var s cache.Snapshot[int]
	ctx := context.Background()

	_, err := s.Get(ctx, func(context.Context) ([]int, error) { return nil, errors.New("db caída") })
	require.Error(t, err)

	got, err := s.Get(ctx, func(context.Context) ([]int, error) { return []int{7}, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)
}

func TestSnapshot_InvalidateDuranteCargaNoGuardaDatosViejos(t *testing.T) {
	var s cache.Snapshot[string]
	ctx := context.Background()

	got, err := s.Get(ctx, func(context.Context) ([]string, error) {
		s.Invalidate() // una escritura confirmada mientras se leía
		return []string{"viejo"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"viejo"}, got)

	got, err = s.Get(ctx, func(context.Context) ([]string, error) { return []string{"nuevo"}, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"nuevo"}, got)
}

type countingChurchRepo struct {
	list      []*entity.Church
	listCalls int
}

func (r *countingChurchRepo) Create(_ context.Context, c *entity.Church) error {
	r.list = append(r.list, c)
	return nil
}

func (r *countingChurchRepo) GetByID(context.Context, string) (*entity.Church, error) {
	return nil, nil
}
func (r *countingChurchRepo) Update(context.Context, *entity.Church) error { return nil }
func (r *countingChurchRepo) Delete(context.Context, string) error         { return nil }

func (r *countingChurchRepo) List(context.Context) ([]*entity.Church, error) {
	r.listCalls++
	return append([]*entity.Church(nil), r.list...), nil
}

func TestChurchRepository_EscrituraInvalida(t *testing.T) {
	inner := &countingChurchRepo{list: []*entity.Church{{ID: "1", Name: "Sede"}}}
	repo := cache.NewChurchRepository(inner)
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.listCalls)

	require.NoError(t, repo.Create(ctx, &entity.Church{ID: "2", Name: "Local"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.listCalls)
	assert.Len(t, list, 2)
}

// memDB simula el ON DELETE SET NULL de membros.church_id.
type memDB struct {
	churches map[string]*entity.Church
	members  []*entity.Member
}

type dbChurches struct{ db *memDB }

func (r dbChurches) Create(_ context.Context, c *entity.Church) error {
	r.db.churches[c.ID] = c
	return nil
}
func (r dbChurches) GetByID(_ context.Context, id string) (*entity.Church, error) {
	return r.db.churches[id], nil
}
func (r dbChurches) Update(context.Context, *entity.Church) error { return nil }

func (r dbChurches) Delete(_ context.Context, id string) error {
	delete(r.db.churches, id)
	for _, m := range r.db.members {
		if m.ChurchID == id {
			m.ChurchID = ""
		}
	}
	return nil
}

func (r dbChurches) List(context.Context) ([]*entity.Church, error) {
	out := make([]*entity.Church, 0, len(r.db.churches))
	for _, c := range r.db.churches {
		out = append(out, c)
	}
	return out, nil
}

type dbMembers struct{ db *memDB }

func (r dbMembers) Create(_ context.Context, m *entity.Member) error {
	r.db.members = append(r.db.members, m)
	return nil
}
func (r dbMembers) GetByID(context.Context, string) (*entity.Member, error) { return nil, nil }
func (r dbMembers) Update(context.Context, *entity.Member) error            { return nil }
func (r dbMembers) Delete(context.Context, string) error                    { return nil }

func (r dbMembers) List(context.Context) ([]*entity.Member, error) {
	out := make([]*entity.Member, 0, len(r.db.members))
	for _, m := range r.db.members {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func TestChurchRepository_DeleteInvalidaMembros(t *testing.T) {
	db := &memDB{
		churches: map[string]*entity.Church{"c1": {ID: "c1", Name: "Sede"}},
		members:  []*entity.Member{{ID: "m1", FullName: "Ana", ChurchID: "c1"}},
	}
	members := cache.NewMemberRepository(dbMembers{db})
	churches := cache.NewChurchRepository(dbChurches{db}, members)
	ctx := context.Background()

	list, err := members.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ChurchID)

	require.NoError(t, churches.Delete(ctx, "c1"))

	list, err = members.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].ChurchID)
}
