package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/logger"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

// ChurchUseCase registro de igrejas.
type ChurchUseCase struct {
	repo     repository.ChurchRepository
	notifier ports.Notifier
	log      *logger.Logger
	pageSize int
}

// NewChurchUseCase construye el caso de uso. notifier puede ser nil.
func NewChurchUseCase(repo repository.ChurchRepository, notifier ports.Notifier, log *logger.Logger, pageSize int) *ChurchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ChurchUseCase{repo: repo, notifier: notifier, log: log.Component("churches"), pageSize: pageSize}
}

// Create da de alta una igreja.
func (uc *ChurchUseCase) Create(ctx context.Context, in dto.ChurchRequest) (*dto.ChurchResponse, error) {
	if err := validateChurch(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Church{ID: uuid.New().String(), CreatedAt: now}
	applyChurch(c, in, now)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ChurchFromEntity(c)
	uc.notify(ctx, ports.ActionCreate, out)
	return &out, nil
}

// GetByID obtiene una igreja.
func (uc *ChurchUseCase) GetByID(ctx context.Context, id string) (*dto.ChurchResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrUnknownChurch
	}
	out := dto.ChurchFromEntity(c)
	return &out, nil
}

// Update reemplaza los datos de la igreja.
func (uc *ChurchUseCase) Update(ctx context.Context, id string, in dto.ChurchRequest) (*dto.ChurchResponse, error) {
	if err := validateChurch(&in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrUnknownChurch
	}
	applyChurch(c, in, time.Now())
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ChurchFromEntity(c)
	uc.notify(ctx, ports.ActionUpdate, out)
	return &out, nil
}

// Delete elimina la igreja.
func (uc *ChurchUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrUnknownChurch
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify(ctx, ports.ActionDelete, dto.ChurchFromEntity(c))
	return nil
}

// List filtra por nombre, clasificación, ciudad, estado o pastor y devuelve el prefijo visible.
func (uc *ChurchUseCase) List(ctx context.Context, req dto.RevealRequest) (*dto.ChurchListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := SearchChurches(all, req.Query)
	visible, page := window(filtered, req.Page, uc.pageSize)
	return &dto.ChurchListResponse{Items: dto.ChurchesFromEntities(visible), Page: page}, nil
}

// SearchChurches filtra igrejas por texto libre.
func SearchChurches(list []*entity.Church, query string) []*entity.Church {
	if strings.TrimSpace(query) == "" {
		return list
	}
	out := make([]*entity.Church, 0, len(list))
	for _, c := range list {
		if textutil.ContainsFold(query, c.Name, c.Classification, c.Address.City, c.Address.State, c.Pastor.FullName) {
			out = append(out, c)
		}
	}
	return out
}

func validateChurch(in *dto.ChurchRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.Classification != "" && !entity.IsValidClassification(in.Classification) {
		return domain.ErrInvalidInput
	}
	if in.Type != "" && !entity.IsValidChurchType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.InitialMembers < 0 || in.CurrentMembers < 0 || in.BaptizedSouls < 0 || in.ChildrenCount < 0 {
		return domain.ErrInvalidInput
	}
	if in.Address.CEP != "" {
		in.Address.CEP = textutil.OnlyDigits(in.Address.CEP)
	}
	return nil
}

func applyChurch(c *entity.Church, in dto.ChurchRequest, now time.Time) {
	c.ImageURL = in.ImageURL
	c.TotvsCode = in.TotvsCode
	c.Classification = in.Classification
	c.Name = in.Name
	c.Type = in.Type
	c.Address = in.Address
	c.Pastor = in.Pastor
	c.InitialMembers = in.InitialMembers
	c.CurrentMembers = in.CurrentMembers
	c.BaptizedSouls = in.BaptizedSouls
	c.HasSchool = in.HasSchool
	c.ChildrenCount = in.ChildrenCount
	c.SchoolDays = in.SchoolDays
	if !in.HasSchool {
		c.ChildrenCount = 0
		c.SchoolDays = nil
	}
	c.Phone = in.Phone
	c.Email = in.Email
	c.UpdatedAt = now
}

func (uc *ChurchUseCase) notify(ctx context.Context, action string, data dto.ChurchResponse) {
	if err := ports.NotifyBestEffort(ctx, uc.notifier, action, ports.TypeChurch, data); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("church_id", data.ID).Msg("notificación falló")
	}
}
