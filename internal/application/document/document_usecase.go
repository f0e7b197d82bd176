// Package document genera las cartas de recomendación para pregar, los documentos de
// remanejamento de dirigentes y la carteirinha y ficha de cada membro.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

// Marcadores admitidos en la plantilla de la carta.
const (
	TagPreacher          = "{nomePregador}"
	TagMinisterialRole   = "{funcaoMinisterial}"
	TagOriginChurch      = "{nomeIgrejaOrigem}"
	TagDestinationChurch = "{nomeIgrejaDestino}"
	TagPreachingDate     = "{dataPregacao}"
	TagIssuedAt          = "{dataEmissao}"
)

const defaultLetterBody = `CARTA DE RECOMENDAÇÃO PARA UM DIA

À IPDA: {nomeIgrejaDestino}

Paz do Senhor!

Recomendamos o(a) Irmão(ã) {nomePregador}, da nossa Congregação, para pregar na vossa IPDA no dia {dataPregacao}.

Função: {funcaoMinisterial}
Congregação de Origem: {nomeIgrejaOrigem}

Data: {dataEmissao}

Observações:
- É proibido tirar fotocópias desta carta. Somente será aceita a original.
- Deve-se assinalar a respectiva função do pregador(a).
- O pregador(a) levará duas cartas à congregação que está destinado a pregar: uma via branca e a outra amarela.
- As duas, em seus versos, deverão ser datadas, carimbadas com o endereço da IPDA e assinadas pelo dirigente.
- O pregador(a) terá de deixar a carta (via amarela) na IPDA a qual foi enviado e trazer a branca à sua congregação e entregá-la ao seu dirigente.
- Esta Carta só vale um dia, ou seja, nesta data.

_______________________________
Assinatura do Dirigente`

// Funciones que pueden asumir la dirección de una IPDA.
var leaderRoles = []string{"Pastor", "Presbítero", "Evangelista", "Missionário", "Obreiro"}

// Tipos de inmueble admitidos en el remanejamento.
var propertyTypes = []string{"Própria", "Alugada", "Cedida"}

// UseCase emite documentos a partir del registro de miembros e igrejas.
type UseCase struct {
	members      repository.MemberRepository
	churches     repository.ChurchRepository
	renderer     ports.DocumentRenderer
	organization string
	now          func() time.Time
}

// NewUseCase construye el caso de uso. organization encabeza la plantilla por defecto.
func NewUseCase(
	members repository.MemberRepository,
	churches repository.ChurchRepository,
	renderer ports.DocumentRenderer,
	organization string,
) *UseCase {
	return &UseCase{
		members:      members,
		churches:     churches,
		renderer:     renderer,
		organization: organization,
		now:          time.Now,
	}
}

// DefaultTemplate plantilla de la carta cuando el pedido no trae una propia.
func (uc *UseCase) DefaultTemplate() string {
	if uc.organization == "" {
		return defaultLetterBody
	}
	return strings.ToUpper(uc.organization) + "\n\n" + defaultLetterBody
}

// PreachingLetter valida el pedido y procesa la plantilla.
func (uc *UseCase) PreachingLetter(ctx context.Context, req dto.PreachingLetterRequest) (*dto.PreachingLetterDTO, error) {
	preachingDate := req.PreachingDate.Ptr()
	if req.MemberID == "" || req.OriginChurchID == "" || req.DestinationChurchID == "" || preachingDate == nil {
		return nil, domain.ErrInvalidInput
	}
	member, err := uc.members.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("document: miembro: %w", err)
	}
	if member == nil {
		return nil, domain.ErrUnknownMember
	}
	origin, err := uc.church(ctx, req.OriginChurchID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.church(ctx, req.DestinationChurchID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	letter := &dto.PreachingLetterDTO{
		Preacher:          member.FullName,
		MinisterialRole:   member.MinisterialRole,
		OriginChurch:      origin.Name,
		DestinationChurch: destination.Name,
		PreachingDate:     textutil.LongDatePT(*preachingDate),
		IssuedAt:          textutil.LongDatePT(now),
		Signature:         strings.TrimSpace(req.Signature),
		GeneratedAt:       now,
	}
	tmpl := req.Template
	if strings.TrimSpace(tmpl) == "" {
		tmpl = uc.DefaultTemplate()
	}
	letter.Text = ProcessTemplate(tmpl, letter)
	return letter, nil
}

// PreachingLetterPDF genera la carta y la entrega como PDF.
func (uc *UseCase) PreachingLetterPDF(ctx context.Context, req dto.PreachingLetterRequest) ([]byte, error) {
	letter, err := uc.PreachingLetter(ctx, req)
	if err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, fmt.Errorf("document: sin generador de PDF")
	}
	b, err := uc.renderer.RenderPreachingLetter(ctx, letter)
	if err != nil {
		return nil, fmt.Errorf("document: pdf carta: %w", err)
	}
	return b, nil
}

// ProcessTemplate reemplaza todas las ocurrencias de cada marcador.
func ProcessTemplate(tmpl string, l *dto.PreachingLetterDTO) string {
	return strings.NewReplacer(
		TagPreacher, l.Preacher,
		TagMinisterialRole, l.MinisterialRole,
		TagOriginChurch, l.OriginChurch,
		TagDestinationChurch, l.DestinationChurch,
		TagPreachingDate, l.PreachingDate,
		TagIssuedAt, l.IssuedAt,
	).Replace(tmpl)
}

// Reassignment arma el documento de remanejamento. El dirigente actual es el pastor
// registrado en la igreja.
func (uc *UseCase) Reassignment(ctx context.Context, req dto.ReassignmentRequest) (*dto.ReassignmentDTO, error) {
	assumption := req.AssumptionDate.Ptr()
	req.Reason = strings.TrimSpace(req.Reason)
	switch {
	case req.ChurchID == "", req.NewLeaderID == "", req.Reason == "", assumption == nil:
		return nil, domain.ErrInvalidInput
	case req.DistanceKm.IsNegative():
		return nil, domain.ErrInvalidInput
	case req.Property.Type != "" && !oneOf(propertyTypes, req.Property.Type):
		return nil, domain.ErrInvalidInput
	}
	church, err := uc.church(ctx, req.ChurchID)
	if err != nil {
		return nil, err
	}
	leader, err := uc.members.GetByID(ctx, req.NewLeaderID)
	if err != nil {
		return nil, fmt.Errorf("document: miembro: %w", err)
	}
	if leader == nil {
		return nil, domain.ErrUnknownMember
	}
	if !oneOf(leaderRoles, leader.MinisterialRole) {
		return nil, fmt.Errorf("%w: %s no puede asumir la dirección", domain.ErrInvalidInput, leader.MinisterialRole)
	}

	now := uc.now()
	doc := &dto.ReassignmentDTO{
		Church: dto.ChurchFromEntity(church),
		NewLeader: dto.LeaderDTO{
			Name:            leader.FullName,
			MinisterialRole: leader.MinisterialRole,
			RG:              leader.RG,
			CPF:             leader.CPF,
			Phone:           leader.Phone,
			Email:           leader.Email,
			BaptismDate:     shortDate(leader.BaptismDate),
		},
		Reason:          req.Reason,
		DistanceKm:      req.DistanceKm,
		ReceivesStipend: req.ReceivesStipend,
		AssumptionDate:  textutil.LongDatePT(*assumption),
		Financial:       req.Financial,
		Property:        req.Property,
		IssuedAt:        textutil.LongDatePT(now),
		GeneratedAt:     now,
	}
	if req.ReceivesStipend {
		doc.StipendSince = shortDate(req.StipendSince.Ptr())
	}
	if doc.Property.Type != "Alugada" {
		doc.Property.ContractExpiry = nil
		doc.Property.Rent = nil
	}
	if p := church.Pastor; strings.TrimSpace(p.FullName) != "" {
		doc.CurrentLeader = &dto.LeaderDTO{
			Name:            p.FullName,
			MinisterialRole: p.MinisterialRole,
			Phone:           p.Phone,
			Email:           p.Email,
			BaptismDate:     p.BaptismDate,
		}
	}
	return doc, nil
}

// ReassignmentPDF genera el remanejamento y lo entrega como PDF.
func (uc *UseCase) ReassignmentPDF(ctx context.Context, req dto.ReassignmentRequest) ([]byte, error) {
	doc, err := uc.Reassignment(ctx, req)
	if err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, fmt.Errorf("document: sin generador de PDF")
	}
	b, err := uc.renderer.RenderReassignment(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("document: pdf remanejamento: %w", err)
	}
	return b, nil
}

// MemberCard arma la carteirinha del membro.
func (uc *UseCase) MemberCard(ctx context.Context, memberID string) (*dto.MemberCardDTO, error) {
	m, err := uc.member(ctx, memberID)
	if err != nil {
		return nil, err
	}
	church, err := uc.memberChurch(ctx, m)
	if err != nil {
		return nil, err
	}
	card := &dto.MemberCardDTO{
		Organization:  uc.organization,
		Name:          strings.ToUpper(m.FullName),
		Registration:  RegistrationNumber(m.ID),
		Group:         strings.ToUpper(m.MinisterialRole),
		BirthDate:     shortDate(m.BirthDate),
		Street:        m.Street,
		HouseNumber:   m.HouseNumber,
		District:      m.District,
		City:          m.City,
		State:         m.State,
		MaritalStatus: m.MaritalStatus,
		BaptismDate:   shortDate(m.BaptismDate),
		CPF:           m.CPF,
		RG:            m.RG,
		Phone:         m.Phone,
		CardData:      m.CardData,
		GeneratedAt:   uc.now(),
	}
	if church != nil {
		card.Church = church.Name
	}
	return card, nil
}

// MemberCardPDF genera la carteirinha y la entrega como PDF.
func (uc *UseCase) MemberCardPDF(ctx context.Context, memberID string) ([]byte, error) {
	card, err := uc.MemberCard(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, fmt.Errorf("document: sin generador de PDF")
	}
	b, err := uc.renderer.RenderMemberCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("document: pdf carteirinha: %w", err)
	}
	return b, nil
}

// MemberRecord arma la ficha de cadastro del membro. El lugar de emisión es la ciudad de su
// igreja, si la tiene.
func (uc *UseCase) MemberRecord(ctx context.Context, memberID string) (*dto.MemberRecordDTO, error) {
	m, err := uc.member(ctx, memberID)
	if err != nil {
		return nil, err
	}
	church, err := uc.memberChurch(ctx, m)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	rec := &dto.MemberRecordDTO{
		Name:            m.FullName,
		Street:          m.Street,
		HouseNumber:     m.HouseNumber,
		District:        m.District,
		City:            m.City,
		State:           m.State,
		CEP:             m.CEP,
		RG:              m.RG,
		CPF:             m.CPF,
		BirthDate:       shortDate(m.BirthDate),
		Age:             m.AgeAt(now),
		BirthCity:       m.BirthCity,
		BirthState:      m.BirthState,
		MaritalStatus:   m.MaritalStatus,
		Email:           m.Email,
		Profession:      m.Profession,
		Phone:           m.Phone,
		BaptismDate:     shortDate(m.BaptismDate),
		MinisterialRole: m.MinisterialRole,
		RecordLink:      m.RecordLink,
		IssuedAt:        now.Format("02/01/2006"),
		GeneratedAt:     now,
	}
	if church != nil {
		rec.Church = church.Name
		rec.IssuedPlace = church.Address.City
	}
	return rec, nil
}

// MemberRecordPDF genera la ficha y la entrega como PDF.
func (uc *UseCase) MemberRecordPDF(ctx context.Context, memberID string) ([]byte, error) {
	rec, err := uc.MemberRecord(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, fmt.Errorf("document: sin generador de PDF")
	}
	b, err := uc.renderer.RenderMemberRecord(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("document: pdf ficha: %w", err)
	}
	return b, nil
}

// RegistrationNumber matrícula impresa en la carteirinha: los primeros 8 dígitos hexadecimales
// del id en mayúsculas, completando con ceros a la izquierda hasta 6 si el id es más corto.
func RegistrationNumber(id string) string {
	s := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(s) > 8 {
		s = s[:8]
	}
	if len(s) < 6 {
		s = strings.Repeat("0", 6-len(s)) + s
	}
	return s
}

func (uc *UseCase) member(ctx context.Context, id string) (*entity.Member, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document: miembro: %w", err)
	}
	if m == nil {
		return nil, domain.ErrUnknownMember
	}
	return m, nil
}

// memberChurch devuelve nil si el membro no tiene igreja o si la igreja ya no existe.
func (uc *UseCase) memberChurch(ctx context.Context, m *entity.Member) (*entity.Church, error) {
	if m.ChurchID == "" {
		return nil, nil
	}
	c, err := uc.churches.GetByID(ctx, m.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("document: igreja: %w", err)
	}
	return c, nil
}

func (uc *UseCase) church(ctx context.Context, id string) (*entity.Church, error) {
	c, err := uc.churches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document: igreja: %w", err)
	}
	if c == nil {
		return nil, domain.ErrUnknownChurch
	}
	return c, nil
}

func shortDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

func oneOf(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
