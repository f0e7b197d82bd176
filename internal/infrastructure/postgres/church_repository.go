package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
)

var _ repository.ChurchRepository = (*ChurchRepo)(nil)

// ChurchRepo persistencia de churches. Dirección, pastor y días de escuela van en columnas JSONB.
type ChurchRepo struct {
	q Querier
}

// NewChurchRepository construye el repositorio (pool o tx).
func NewChurchRepository(q Querier) *ChurchRepo {
	return &ChurchRepo{q: q}
}

const churchColumns = `id, COALESCE(foto, ''), COALESCE(totvs, ''), COALESCE(classificacao, ''), nomeipda,
	COALESCE(tipoipda, ''), endereco, pastor, membrosiniciais, membrosatuais, almasbatizadas, temescola,
	quantidadecriancas, diasfuncionamento, COALESCE(telefone, ''), COALESCE(email, ''), datacadastro, dataatualizacao`

func scanChurch(row pgx.Row) (*entity.Church, error) {
	var (
		c                     entity.Church
		address, pastor, days []byte
	)
	err := row.Scan(&c.ID, &c.ImageURL, &c.TotvsCode, &c.Classification, &c.Name, &c.Type,
		&address, &pastor, &c.InitialMembers, &c.CurrentMembers, &c.BaptizedSouls, &c.HasSchool,
		&c.ChildrenCount, &days, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(address, &c.Address); err != nil {
		return nil, fmt.Errorf("endereco: %w", err)
	}
	if err := unmarshalJSONB(pastor, &c.Pastor); err != nil {
		return nil, fmt.Errorf("pastor: %w", err)
	}
	if err := unmarshalJSONB(days, &c.SchoolDays); err != nil {
		return nil, fmt.Errorf("diasfuncionamento: %w", err)
	}
	return &c, nil
}

func unmarshalJSONB(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func churchJSON(c *entity.Church) (address, pastor, days []byte, err error) {
	if address, err = json.Marshal(c.Address); err != nil {
		return
	}
	if pastor, err = json.Marshal(c.Pastor); err != nil {
		return
	}
	schoolDays := c.SchoolDays
	if schoolDays == nil {
		schoolDays = []string{}
	}
	days, err = json.Marshal(schoolDays)
	return
}

// Create persiste una igreja.
func (r *ChurchRepo) Create(ctx context.Context, c *entity.Church) error {
	address, pastor, days, err := churchJSON(c)
	if err != nil {
		return fmt.Errorf("encode church: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO churches (id, foto, totvs, classificacao, nomeipda, tipoipda, endereco, pastor,
			membrosiniciais, membrosatuais, almasbatizadas, temescola, quantidadecriancas, diasfuncionamento,
			telefone, email, datacadastro, dataatualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		c.ID, c.ImageURL, c.TotvsCode, c.Classification, c.Name, c.Type, address, pastor,
		c.InitialMembers, c.CurrentMembers, c.BaptizedSouls, c.HasSchool, c.ChildrenCount, days,
		c.Phone, c.Email, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert church: %w", err)
	}
	return nil
}

// GetByID obtiene una igreja por ID.
func (r *ChurchRepo) GetByID(ctx context.Context, id string) (*entity.Church, error) {
	id, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	c, err := scanChurch(r.q.QueryRow(ctx, `SELECT `+churchColumns+` FROM churches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get church: %w", err)
	}
	return c, nil
}

// Update reemplaza los datos de la igreja.
func (r *ChurchRepo) Update(ctx context.Context, c *entity.Church) error {
	if _, ok := parseID(c.ID); !ok {
		return domain.ErrNotFound
	}
	address, pastor, days, err := churchJSON(c)
	if err != nil {
		return fmt.Errorf("encode church: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE churches SET foto = $2, totvs = $3, classificacao = $4, nomeipda = $5, tipoipda = $6,
			endereco = $7, pastor = $8, membrosiniciais = $9, membrosatuais = $10, almasbatizadas = $11,
			temescola = $12, quantidadecriancas = $13, diasfuncionamento = $14, telefone = $15, email = $16,
			dataatualizacao = $17
		WHERE id = $1`,
		c.ID, c.ImageURL, c.TotvsCode, c.Classification, c.Name, c.Type, address, pastor,
		c.InitialMembers, c.CurrentMembers, c.BaptizedSouls, c.HasSchool, c.ChildrenCount, days,
		c.Phone, c.Email, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update church: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la igreja; los membros vinculados quedan sin igreja (ON DELETE SET NULL).
func (r *ChurchRepo) Delete(ctx context.Context, id string) error {
	id, ok := parseID(id)
	if !ok {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM churches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete church: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List todas las igrejas ordenadas por nombre.
func (r *ChurchRepo) List(ctx context.Context) ([]*entity.Church, error) {
	rows, err := r.q.Query(ctx, `SELECT `+churchColumns+` FROM churches ORDER BY nomeipda, id`)
	if err != nil {
		return nil, fmt.Errorf("list churches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Church
	for rows.Next() {
		c, err := scanChurch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan church: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
