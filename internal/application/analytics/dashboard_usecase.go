// Package analytics contiene el resumen del Dashboard de la secretaría.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

const (
	dashboardRecentMembers   = 5
	dashboardRecentMovements = 5
	dashboardLowStock        = 3
)

// InventoryStats lecturas del libro de stock que usa el dashboard.
type InventoryStats interface {
	GetTotalStockValue(ctx context.Context) (decimal.Decimal, error)
	GetTotalItemTypes(ctx context.Context) (int, error)
	GetRecentMovements(ctx context.Context, limit int) ([]*entity.Movement, error)
	GetLowStockItems(ctx context.Context, limit int) ([]*entity.InventoryItem, error)
}

// DashboardUseCase genera el resumen de miembros, igrejas y depósito.
type DashboardUseCase struct {
	memberRepo repository.MemberRepository
	churchRepo repository.ChurchRepository
	inventory  InventoryStats
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(memberRepo repository.MemberRepository, churchRepo repository.ChurchRepository, inventory InventoryStats) *DashboardUseCase {
	return &DashboardUseCase{memberRepo: memberRepo, churchRepo: churchRepo, inventory: inventory, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres bloques en paralelo:
//  1. miembros  → total, por función ministerial, 5 recientes
//  2. igrejas   → total, por clasificación, Σ membros atuais, Σ almas batizadas
//  3. depósito  → valor total, tipos con stock, 5 movimientos recientes, 3 con stock bajo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	type membersResult struct {
		stats dto.MemberStatsDTO
		err   error
	}
	type churchesResult struct {
		stats dto.ChurchStatsDTO
		err   error
	}
	type inventoryResult struct {
		stats dto.InventoryStatsDTO
		err   error
	}

	membersCh := make(chan membersResult, 1)
	churchesCh := make(chan churchesResult, 1)
	inventoryCh := make(chan inventoryResult, 1)

	go func() {
		s, err := uc.memberStats(ctx, now)
		membersCh <- membersResult{s, err}
	}()
	go func() {
		s, err := uc.churchStats(ctx)
		churchesCh <- churchesResult{s, err}
	}()
	go func() {
		s, err := uc.inventoryStats(ctx)
		inventoryCh <- inventoryResult{s, err}
	}()

	members := <-membersCh
	churches := <-churchesCh
	inv := <-inventoryCh

	if members.err != nil {
		return nil, fmt.Errorf("dashboard: miembros: %w", members.err)
	}
	if churches.err != nil {
		return nil, fmt.Errorf("dashboard: igrejas: %w", churches.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: depósito: %w", inv.err)
	}

	return &dto.DashboardSummaryDTO{
		Members:   members.stats,
		Churches:  churches.stats,
		Inventory: inv.stats,
		DateLabel: textutil.MonthLabelPT(now),
	}, nil
}

func (uc *DashboardUseCase) memberStats(ctx context.Context, now time.Time) (dto.MemberStatsDTO, error) {
	list, err := uc.memberRepo.List(ctx)
	if err != nil {
		return dto.MemberStatsDTO{}, err
	}
	byRole := make(map[string]int)
	for _, m := range list {
		role := m.MinisterialRole
		if role == "" {
			role = "Membro"
		}
		byRole[role]++
	}
	recent := make([]*entity.Member, len(list))
	copy(recent, list)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > dashboardRecentMembers {
		recent = recent[:dashboardRecentMembers]
	}
	return dto.MemberStatsDTO{
		Total:  len(list),
		ByRole: byRole,
		Recent: dto.MembersFromEntities(recent, now),
	}, nil
}

func (uc *DashboardUseCase) churchStats(ctx context.Context) (dto.ChurchStatsDTO, error) {
	list, err := uc.churchRepo.List(ctx)
	if err != nil {
		return dto.ChurchStatsDTO{}, err
	}
	out := dto.ChurchStatsDTO{Total: len(list), ByClassification: make(map[string]int)}
	for _, c := range list {
		if c.Classification != "" {
			out.ByClassification[c.Classification]++
		}
		out.CurrentMembers += c.CurrentMembers
		out.BaptizedSouls += c.BaptizedSouls
	}
	return out, nil
}

func (uc *DashboardUseCase) inventoryStats(ctx context.Context) (dto.InventoryStatsDTO, error) {
	value, err := uc.inventory.GetTotalStockValue(ctx)
	if err != nil {
		return dto.InventoryStatsDTO{}, err
	}
	types, err := uc.inventory.GetTotalItemTypes(ctx)
	if err != nil {
		return dto.InventoryStatsDTO{}, err
	}
	movs, err := uc.inventory.GetRecentMovements(ctx, dashboardRecentMovements)
	if err != nil {
		return dto.InventoryStatsDTO{}, err
	}
	low, err := uc.inventory.GetLowStockItems(ctx, dashboardLowStock)
	if err != nil {
		return dto.InventoryStatsDTO{}, err
	}
	return dto.InventoryStatsDTO{
		TotalValue:      value.Round(2),
		TotalItemTypes:  types,
		RecentMovements: dto.MovementsFromEntities(movs),
		LowStock:        dto.ItemsFromEntities(low),
	}, nil
}
