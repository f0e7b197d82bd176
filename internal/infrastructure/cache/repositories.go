package cache

import (
	"context"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var (
	_ repository.InventoryItemRepository = (*ItemRepository)(nil)
	_ repository.ChurchRepository        = (*ChurchRepository)(nil)
	_ repository.MemberRepository        = (*MemberRepository)(nil)
)

// ItemRepository cachea List de ítems. Las entidades devueltas por List son compartidas:
// los llamadores no deben modificarlas.
type ItemRepository struct {
	repository.InventoryItemRepository
	snap Snapshot[*entity.InventoryItem]
}

// NewItemRepository envuelve el repositorio de ítems.
func NewItemRepository(inner repository.InventoryItemRepository) *ItemRepository {
	return &ItemRepository{InventoryItemRepository: inner}
}

func (r *ItemRepository) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.snap.Get(ctx, r.InventoryItemRepository.List)
}

func (r *ItemRepository) Invalidate() { r.snap.Invalidate() }

func (r *ItemRepository) Create(ctx context.Context, it *entity.InventoryItem) error {
	defer r.snap.Invalidate()
	return r.InventoryItemRepository.Create(ctx, it)
}

func (r *ItemRepository) Update(ctx context.Context, it *entity.InventoryItem) error {
	defer r.snap.Invalidate()
	return r.InventoryItemRepository.Update(ctx, it)
}

func (r *ItemRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	defer r.snap.Invalidate()
	return r.InventoryItemRepository.UpdateStock(ctx, id, stock)
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	defer r.snap.Invalidate()
	return r.InventoryItemRepository.Delete(ctx, id)
}

// ChurchRepository cachea List de igrejas.
type ChurchRepository struct {
	repository.ChurchRepository
	snap Snapshot[*entity.Church]
	// dependents cachean filas que referencian igrejas (membros.church_id pasa a NULL al borrar).
	dependents []ports.Invalidator
}

// NewChurchRepository envuelve el repositorio de igrejas. dependents se invalidan junto con la
// copia propia cuando se borra una igreja.
func NewChurchRepository(inner repository.ChurchRepository, dependents ...ports.Invalidator) *ChurchRepository {
	return &ChurchRepository{ChurchRepository: inner, dependents: dependents}
}

func (r *ChurchRepository) List(ctx context.Context) ([]*entity.Church, error) {
	return r.snap.Get(ctx, r.ChurchRepository.List)
}

func (r *ChurchRepository) Invalidate() { r.snap.Invalidate() }

func (r *ChurchRepository) Create(ctx context.Context, c *entity.Church) error {
	defer r.snap.Invalidate()
	return r.ChurchRepository.Create(ctx, c)
}

func (r *ChurchRepository) Update(ctx context.Context, c *entity.Church) error {
	defer r.snap.Invalidate()
	return r.ChurchRepository.Update(ctx, c)
}

func (r *ChurchRepository) Delete(ctx context.Context, id string) error {
	defer func() {
		r.snap.Invalidate()
		for _, d := range r.dependents {
			d.Invalidate()
		}
	}()
	return r.ChurchRepository.Delete(ctx, id)
}

// MemberRepository cachea List de membros.
type MemberRepository struct {
	repository.MemberRepository
	snap Snapshot[*entity.Member]
}

// NewMemberRepository envuelve el repositorio de membros.
func NewMemberRepository(inner repository.MemberRepository) *MemberRepository {
	return &MemberRepository{MemberRepository: inner}
}

func (r *MemberRepository) List(ctx context.Context) ([]*entity.Member, error) {
	return r.snap.Get(ctx, r.MemberRepository.List)
}

func (r *MemberRepository) Invalidate() { r.snap.Invalidate() }

func (r *MemberRepository) Create(ctx context.Context, m *entity.Member) error {
	defer r.snap.Invalidate()
	return r.MemberRepository.Create(ctx, m)
}

func (r *MemberRepository) Update(ctx context.Context, m *entity.Member) error {
	defer r.snap.Invalidate()
	return r.MemberRepository.Update(ctx, m)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	defer r.snap.Invalidate()
	return r.MemberRepository.Delete(ctx, id)
}
