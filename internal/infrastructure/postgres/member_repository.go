package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo persistencia de la tabla membros.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository construye el repositorio (pool o tx).
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `id, nome_completo, COALESCE(foto, ''), COALESCE(email, ''), COALESCE(endereco, ''),
	COALESCE(bairro, ''), COALESCE(numero_casa, ''), COALESCE(cidade, ''), COALESCE(estado, ''), COALESCE(cep, ''),
	COALESCE(cpf, ''), COALESCE(rg, ''), COALESCE(cidade_nascimento, ''), COALESCE(estado_cidade_nascimento, ''),
	data_nascimento, COALESCE(estado_civil, ''), COALESCE(telefone, ''), COALESCE(profissao, ''), tem_filhos, ativo,
	data_batismo, COALESCE(funcao_ministerial, ''), COALESCE(church_id::text, ''), COALESCE(link_ficha, ''),
	COALESCE(dados_carteirinha, ''), COALESCE(observacoes, ''), created_at, data_atualizacao`

func scanMember(row pgx.Row) (*entity.Member, error) {
	var (
		m              entity.Member
		birth, baptism pgtype.Date
	)
	err := row.Scan(&m.ID, &m.FullName, &m.ImageURL, &m.Email, &m.Street, &m.District, &m.HouseNumber,
		&m.City, &m.State, &m.CEP, &m.CPF, &m.RG, &m.BirthCity, &m.BirthState, &birth, &m.MaritalStatus,
		&m.Phone, &m.Profession, &m.HasChildren, &m.Active, &baptism, &m.MinisterialRole, &m.ChurchID,
		&m.RecordLink, &m.CardData, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.BirthDate = datePtr(birth)
	m.BaptismDate = datePtr(baptism)
	return &m, nil
}

// Create persiste un miembro.
func (r *MemberRepo) Create(ctx context.Context, m *entity.Member) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO membros (id, nome_completo, foto, email, endereco, bairro, numero_casa, cidade, estado, cep,
			cpf, rg, cidade_nascimento, estado_cidade_nascimento, data_nascimento, estado_civil, telefone,
			profissao, tem_filhos, ativo, data_batismo, funcao_ministerial, church_id, link_ficha,
			dados_carteirinha, observacoes, created_at, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28)`,
		m.ID, m.FullName, m.ImageURL, m.Email, m.Street, m.District, m.HouseNumber, m.City, m.State, m.CEP,
		m.CPF, m.RG, m.BirthCity, m.BirthState, nullDate(m.BirthDate), m.MaritalStatus, m.Phone,
		m.Profession, m.HasChildren, m.Active, nullDate(m.BaptismDate), m.MinisterialRole,
		nullString(m.ChurchID), m.RecordLink, m.CardData, m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	id, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	m, err := scanMember(r.q.QueryRow(ctx, `SELECT `+memberColumns+` FROM membros WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// Update reemplaza los datos del miembro.
func (r *MemberRepo) Update(ctx context.Context, m *entity.Member) error {
	if _, ok := parseID(m.ID); !ok {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE membros SET nome_completo = $2, foto = $3, email = $4, endereco = $5, bairro = $6,
			numero_casa = $7, cidade = $8, estado = $9, cep = $10, cpf = $11, rg = $12, cidade_nascimento = $13,
			estado_cidade_nascimento = $14, data_nascimento = $15, estado_civil = $16, telefone = $17,
			profissao = $18, tem_filhos = $19, ativo = $20, data_batismo = $21, funcao_ministerial = $22,
			church_id = $23, link_ficha = $24, dados_carteirinha = $25, observacoes = $26, data_atualizacao = $27
		WHERE id = $1`,
		m.ID, m.FullName, m.ImageURL, m.Email, m.Street, m.District, m.HouseNumber, m.City, m.State, m.CEP,
		m.CPF, m.RG, m.BirthCity, m.BirthState, nullDate(m.BirthDate), m.MaritalStatus, m.Phone,
		m.Profession, m.HasChildren, m.Active, nullDate(m.BaptismDate), m.MinisterialRole,
		nullString(m.ChurchID), m.RecordLink, m.CardData, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un miembro.
func (r *MemberRepo) Delete(ctx context.Context, id string) error {
	id, ok := parseID(id)
	if !ok {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM membros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los miembros ordenados por nombre.
func (r *MemberRepo) List(ctx context.Context) ([]*entity.Member, error) {
	rows, err := r.q.Query(ctx, `SELECT `+memberColumns+` FROM membros ORDER BY nome_completo, id`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var list []*entity.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
