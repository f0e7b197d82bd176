package usecase_test

import (
	"context"
	"sync"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

type memItems struct {
	mu    sync.Mutex
	byID  map[string]*entity.InventoryItem
	order []string
}

func newMemItems() *memItems { return &memItems{byID: map[string]*entity.InventoryItem{}} }

func (r *memItems) Create(_ context.Context, it *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *it
	r.byID[it.ID] = &cp
	r.order = append(r.order, it.ID)
	return nil
}

func (r *memItems) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItems) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *memItems) Update(_ context.Context, it *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *memItems) UpdateStock(_ context.Context, id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id].Stock = stock
	return nil
}

func (r *memItems) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memItems) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.InventoryItem{}
	for _, id := range r.order {
		if it, ok := r.byID[id]; ok {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memChurches struct {
	byID  map[string]*entity.Church
	order []string
}

func newMemChurches(cs ...*entity.Church) *memChurches {
	r := &memChurches{byID: map[string]*entity.Church{}}
	for _, c := range cs {
		_ = r.Create(context.Background(), c)
	}
	return r
}

func (r *memChurches) Create(_ context.Context, c *entity.Church) error {
	cp := *c
	r.byID[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memChurches) GetByID(_ context.Context, id string) (*entity.Church, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memChurches) Update(_ context.Context, c *entity.Church) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memChurches) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memChurches) List(_ context.Context) ([]*entity.Church, error) {
	out := []*entity.Church{}
	for _, id := range r.order {
		if c, ok := r.byID[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memMembers struct {
	byID  map[string]*entity.Member
	order []string
}

func newMemMembers(ms ...*entity.Member) *memMembers {
	r := &memMembers{byID: map[string]*entity.Member{}}
	for _, m := range ms {
		_ = r.Create(context.Background(), m)
	}
	return r
}

func (r *memMembers) Create(_ context.Context, m *entity.Member) error {
	cp := *m
	r.byID[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *memMembers) GetByID(_ context.Context, id string) (*entity.Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMembers) Update(_ context.Context, m *entity.Member) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *memMembers) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memMembers) List(_ context.Context) ([]*entity.Member, error) {
	out := []*entity.Member{}
	for _, id := range r.order {
		if m, ok := r.byID[id]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	events []ports.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, e ports.Event) error {
	n.events = append(n.events, e)
	return n.err
}
