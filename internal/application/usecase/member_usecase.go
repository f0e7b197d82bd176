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

// MemberUseCase registro de membros.
type MemberUseCase struct {
	repo       repository.MemberRepository
	churchRepo repository.ChurchRepository
	notifier   ports.Notifier
	log        *logger.Logger
	pageSize   int
	now        func() time.Time
}

// NewMemberUseCase construye el caso de uso. notifier puede ser nil.
func NewMemberUseCase(
	repo repository.MemberRepository,
	churchRepo repository.ChurchRepository,
	notifier ports.Notifier,
	log *logger.Logger,
	pageSize int,
) *MemberUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MemberUseCase{
		repo:       repo,
		churchRepo: churchRepo,
		notifier:   notifier,
		log:        log.Component("members"),
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// Create da de alta un miembro. Si trae igrejaId, la igreja debe existir.
func (uc *MemberUseCase) Create(ctx context.Context, in dto.MemberRequest) (*dto.MemberResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	now := uc.now()
	m := &entity.Member{ID: uuid.New().String(), Active: true, CreatedAt: now}
	applyMember(m, in, now)
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.MemberFromEntity(m, now)
	uc.notify(ctx, ports.ActionCreate, out)
	return &out, nil
}

// GetByID obtiene un miembro.
func (uc *MemberUseCase) GetByID(ctx context.Context, id string) (*dto.MemberResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrUnknownMember
	}
	out := dto.MemberFromEntity(m, uc.now())
	return &out, nil
}

// Update reemplaza los datos del miembro.
func (uc *MemberUseCase) Update(ctx context.Context, id string, in dto.MemberRequest) (*dto.MemberResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrUnknownMember
	}
	now := uc.now()
	applyMember(m, in, now)
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := dto.MemberFromEntity(m, now)
	uc.notify(ctx, ports.ActionUpdate, out)
	return &out, nil
}

// Delete elimina un miembro.
func (uc *MemberUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrUnknownMember
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify(ctx, ports.ActionDelete, dto.MemberFromEntity(m, uc.now()))
	return nil
}

// List filtra por nombre, función ministerial, ciudad, teléfono o email y devuelve el prefijo visible.
func (uc *MemberUseCase) List(ctx context.Context, req dto.RevealRequest) (*dto.MemberListResponse, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := SearchMembers(all, req.Query)
	visible, page := window(filtered, req.Page, uc.pageSize)
	return &dto.MemberListResponse{Items: dto.MembersFromEntities(visible, uc.now()), Page: page}, nil
}

// SearchMembers filtra membros por texto libre.
func SearchMembers(list []*entity.Member, query string) []*entity.Member {
	if strings.TrimSpace(query) == "" {
		return list
	}
	out := make([]*entity.Member, 0, len(list))
	for _, m := range list {
		if textutil.ContainsFold(query, m.FullName, m.MinisterialRole, m.City, m.Phone, m.Email) {
			out = append(out, m)
		}
	}
	return out
}

func (uc *MemberUseCase) validate(ctx context.Context, in *dto.MemberRequest) error {
	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return domain.ErrInvalidInput
	}
	if in.MinisterialRole == "" {
		in.MinisterialRole = "Membro"
	}
	if !entity.IsValidMinisterialRole(in.MinisterialRole) {
		return domain.ErrInvalidInput
	}
	if in.MaritalStatus != "" && !entity.IsValidMaritalStatus(in.MaritalStatus) {
		return domain.ErrInvalidInput
	}
	if b := in.BirthDate.Ptr(); b != nil && b.After(uc.now()) {
		return domain.ErrInvalidInput
	}
	if in.CEP != "" {
		in.CEP = textutil.OnlyDigits(in.CEP)
	}
	if in.ChurchID != "" {
		c, err := uc.churchRepo.GetByID(ctx, in.ChurchID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrUnknownChurch
		}
	}
	return nil
}

func applyMember(m *entity.Member, in dto.MemberRequest, now time.Time) {
	m.FullName = in.FullName
	m.ImageURL = in.ImageURL
	m.Email = in.Email
	m.Street = in.Street
	m.District = in.District
	m.HouseNumber = in.HouseNumber
	m.City = in.City
	m.State = in.State
	m.CEP = in.CEP
	m.CPF = in.CPF
	m.RG = in.RG
	m.BirthCity = in.BirthCity
	m.BirthState = in.BirthState
	m.BirthDate = in.BirthDate.Ptr()
	m.MaritalStatus = in.MaritalStatus
	m.Phone = in.Phone
	m.Profession = in.Profession
	m.HasChildren = in.HasChildren
	if in.Active != nil {
		m.Active = *in.Active
	}
	m.BaptismDate = in.BaptismDate.Ptr()
	m.MinisterialRole = in.MinisterialRole
	m.ChurchID = in.ChurchID
	m.RecordLink = in.RecordLink
	m.CardData = in.CardData
	m.Notes = in.Notes
	m.UpdatedAt = now
}

func (uc *MemberUseCase) notify(ctx context.Context, action string, data dto.MemberResponse) {
	if err := ports.NotifyBestEffort(ctx, uc.notifier, action, ports.TypeMember, data); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("member_id", data.ID).Msg("notificación falló")
	}
}
