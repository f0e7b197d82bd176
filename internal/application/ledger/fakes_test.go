package ledger_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

// memStore estado en memoria con semántica transaccional: memTx trabaja sobre una copia
// y solo la publica si fn no devuelve error.
type memStore struct {
	mu        sync.Mutex
	items     map[string]entity.InventoryItem
	order     []string
	movements []entity.Movement
	transfers map[string]entity.Transfer
	churches  map[string]*entity.Church

	failMovementCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		items:     map[string]entity.InventoryItem{},
		transfers: map[string]entity.Transfer{},
		churches:  map[string]*entity.Church{},
	}
}

func (s *memStore) addItem(it entity.InventoryItem) {
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
}

func (s *memStore) addChurch(id, name string) {
	s.churches[id] = &entity.Church{ID: id, Name: name}
}

func (s *memStore) stock(id string) int { return s.items[id].Stock }

func (s *memStore) clone() *memStore {
	c := &memStore{
		items:              make(map[string]entity.InventoryItem, len(s.items)),
		order:              append([]string(nil), s.order...),
		movements:          append([]entity.Movement(nil), s.movements...),
		transfers:          make(map[string]entity.Transfer, len(s.transfers)),
		churches:           s.churches,
		failMovementCreate: s.failMovementCreate,
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = v
	}
	return c
}

type memTx struct{ store *memStore }

func (r memTx) Run(_ context.Context, fn func(
	items repository.InventoryItemRepository,
	movements repository.MovementRepository,
	transfers repository.TransferRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	work := r.store.clone()
	if err := fn(itemRepo{work}, movementRepo{work}, transferRepo{work}); err != nil {
		return err
	}
	r.store.items = work.items
	r.store.order = work.order
	r.store.movements = work.movements
	r.store.transfers = work.transfers
	return nil
}

type itemRepo struct{ s *memStore }

func (r itemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	r.s.addItem(*it)
	return nil
}

func (r itemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r itemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r itemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	r.s.items[it.ID] = *it
	return nil
}

func (r itemRepo) UpdateStock(_ context.Context, id string, stock int) error {
	it := r.s.items[id]
	it.Stock = stock
	r.s.items[id] = it
	return nil
}

func (r itemRepo) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

func (r itemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.s.order))
	for _, id := range r.s.order {
		if it, ok := r.s.items[id]; ok {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type movementRepo struct{ s *memStore }

func (r movementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.s.failMovementCreate {
		return errors.New("disco lleno")
	}
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for i := range r.s.movements {
		m := r.s.movements[i]
		if f.ItemID != "" && m.ItemID != f.ItemID {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		out = append(out, &m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type transferRepo struct{ s *memStore }

func (r transferRepo) Create(_ context.Context, t *entity.Transfer) error {
	r.s.transfers[t.ID] = *t
	return nil
}

func (r transferRepo) GetByID(_ context.Context, id string) (*entity.Transfer, error) {
	t, ok := r.s.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r transferRepo) UpdateStatus(_ context.Context, id, status string, at time.Time) error {
	t := r.s.transfers[id]
	t.Status = status
	t.UpdatedAt = at
	r.s.transfers[id] = t
	return nil
}

func (r transferRepo) List(_ context.Context, limit, offset int) ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0, len(r.s.transfers))
	for _, t := range r.s.transfers {
		cp := t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type churchRepo struct{ s *memStore }

func (r churchRepo) Create(_ context.Context, c *entity.Church) error {
	r.s.churches[c.ID] = c
	return nil
}

func (r churchRepo) GetByID(_ context.Context, id string) (*entity.Church, error) {
	return r.s.churches[id], nil
}

func (r churchRepo) Update(_ context.Context, c *entity.Church) error {
	r.s.churches[c.ID] = c
	return nil
}

func (r churchRepo) Delete(_ context.Context, id string) error {
	delete(r.s.churches, id)
	return nil
}

func (r churchRepo) List(_ context.Context) ([]*entity.Church, error) {
	out := make([]*entity.Church, 0, len(r.s.churches))
	for _, c := range r.s.churches {
		out = append(out, c)
	}
	return out, nil
}

// recordingNotifier guarda los eventos y devuelve err en cada llamada.
type recordingNotifier struct {
	events []ports.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, e ports.Event) error {
	n.events = append(n.events, e)
	return n.err
}

type countingCache struct{ n int }

func (c *countingCache) Invalidate() { c.n++ }
