package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

type listMembers struct{ list []*entity.Member }

func (r listMembers) Create(context.Context, *entity.Member) error            { return nil }
func (r listMembers) GetByID(context.Context, string) (*entity.Member, error) { return nil, nil }
func (r listMembers) Update(context.Context, *entity.Member) error            { return nil }
func (r listMembers) Delete(context.Context, string) error                    { return nil }
func (r listMembers) List(context.Context) ([]*entity.Member, error)          { return r.list, nil }

type listChurches struct{ list []*entity.Church }

func (r listChurches) Create(context.Context, *entity.Church) error            { return nil }
func (r listChurches) GetByID(context.Context, string) (*entity.Church, error) { return nil, nil }
func (r listChurches) Update(context.Context, *entity.Church) error            { return nil }
func (r listChurches) Delete(context.Context, string) error                    { return nil }
func (r listChurches) List(context.Context) ([]*entity.Church, error)          { return r.list, nil }

type listItems struct{ list []*entity.InventoryItem }

func (r listItems) Create(context.Context, *entity.InventoryItem) error { return nil }
func (r listItems) GetByID(context.Context, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r listItems) GetForUpdate(context.Context, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r listItems) Update(context.Context, *entity.InventoryItem) error   { return nil }
func (r listItems) UpdateStock(context.Context, string, int) error        { return nil }
func (r listItems) Delete(context.Context, string) error                  { return nil }
func (r listItems) List(context.Context) ([]*entity.InventoryItem, error) { return r.list, nil }

type fakeRenderer struct {
	report *dto.ReportDTO
	err    error
}

func (f *fakeRenderer) RenderPreachingLetter(context.Context, *dto.PreachingLetterDTO) ([]byte, error) {
	return nil, nil
}
func (f *fakeRenderer) RenderReassignment(context.Context, *dto.ReassignmentDTO) ([]byte, error) {
	return nil, nil
}
func (f *fakeRenderer) RenderMemberCard(context.Context, *dto.MemberCardDTO) ([]byte, error) {
	return nil, nil
}
func (f *fakeRenderer) RenderMemberRecord(context.Context, *dto.MemberRecordDTO) ([]byte, error) {
	return nil, nil
}
func (f *fakeRenderer) RenderReport(_ context.Context, r *dto.ReportDTO) ([]byte, error) {
	f.report = r
	return []byte("%PDF-"), f.err
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestUseCase(r *fakeRenderer) *UseCase {
	members := []*entity.Member{
		{FullName: "Zacarias", MinisterialRole: "Pastor", MaritalStatus: "Casado", BirthDate: day(1970, time.March, 20), BaptismDate: day(1990, time.May, 1)},
		{FullName: "Ábner", MinisterialRole: "Obreiro", BirthDate: day(2000, time.March, 5), BaptismDate: day(2024, time.June, 9)},
		{FullName: "Bruna", MinisterialRole: "Obreiro", MaritalStatus: "Solteiro", BirthDate: day(1995, time.July, 1), BaptismDate: day(2024, time.January, 15)},
	}
	churches := []*entity.Church{
		{Name: "IPDA Centro", Classification: "Setorial", Address: entity.Address{State: "es"}, InitialMembers: 100, CurrentMembers: 150, BaptizedSouls: 12},
		{Name: "IPDA Praia", Classification: "Local", Address: entity.Address{State: "ES"}, InitialMembers: 40, CurrentMembers: 30, BaptizedSouls: 2},
		{Name: "IPDA Serra", Classification: "Local", Address: entity.Address{State: "MG"}, InitialMembers: 10, CurrentMembers: 10},
	}
	items := []*entity.InventoryItem{
		{Name: "Hinário", Category: entity.CategoryHinarios, Stock: 50, UnitPrice: decimal.NewFromInt(10)},
		{Name: "Bíblia", Category: entity.CategoryBiblias, Stock: 4, MinimumStock: 5, UnitPrice: decimal.NewFromInt(80)},
		{Name: "Revista", Category: entity.CategoryHinarios, Stock: 0, UnitPrice: decimal.RequireFromString("7.5")},
	}
	var renderer ports.DocumentRenderer
	if r != nil {
		renderer = r
	}
	uc := NewUseCase(listMembers{members}, listChurches{churches}, listItems{items}, renderer)
	uc.now = func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) }
	return uc
}

func TestGenerate_TipoDesconocido(t *testing.T) {
	uc := newTestUseCase(nil)
	_, err := uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "nada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Generate(context.Background(), dto.ReportRequest{Category: "financeiro", Kind: "todos"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_TodosOsMembrosOrdenaSinAcentos(t *testing.T) {
	rep, err := newTestUseCase(nil).Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "todos"})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, "Ábner", rep.Rows[0][0])
	assert.Equal(t, "Bruna", rep.Rows[1][0])
	assert.Len(t, rep.Columns, 5)
	assert.Equal(t, "3", rep.Totals["membros"])
	assert.Equal(t, "membros", rep.Category)
}

func TestGenerate_PorFuncao(t *testing.T) {
	rep, err := newTestUseCase(nil).Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "por-funcao"})
	require.NoError(t, err)
	require.Len(t, rep.Groups, 2)
	assert.Equal(t, dto.ReportGroup{Label: "Obreiro", Count: 2}, rep.Groups[0])
	assert.Equal(t, []string{"Pastor", "1"}, rep.Rows[1])
}

func TestGenerate_Aniversariantes(t *testing.T) {
	uc := newTestUseCase(nil)
	rep, err := uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "aniversariantes"})
	require.NoError(t, err)
	assert.Contains(t, rep.Title, "março")
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "Ábner", rep.Rows[0][0])
	assert.Equal(t, "05/03", rep.Rows[0][1])
	assert.Equal(t, "24", rep.Rows[0][2])

	rep, err = uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "aniversariantes", Month: 7})
	require.NoError(t, err)
	assert.Len(t, rep.Rows, 1)

	_, err = uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "aniversariantes", Month: 13})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_EstadoCivil(t *testing.T) {
	rep, err := newTestUseCase(nil).Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "por-estado-civil"})
	require.NoError(t, err)
	assert.Len(t, rep.Groups, 3)
	assert.Equal(t, "3", rep.Totals["total"])
}

func TestGenerate_BatizadosPeriodo(t *testing.T) {
	uc := newTestUseCase(nil)
	rep, err := uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "batizados-periodo"})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "Bruna", rep.Rows[0][0])

	rep, err = uc.Generate(context.Background(), dto.ReportRequest{
		Category: "membros", Kind: "batizados-periodo", From: "1990-05-01", To: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Len(t, rep.Rows, 2)

	_, err = uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "batizados-periodo", From: "2024-02-01", To: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Generate(context.Background(), dto.ReportRequest{Category: "membros", Kind: "batizados-periodo", From: "01/02/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_Igrejas(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	rep, err := uc.Generate(ctx, dto.ReportRequest{Category: "igrejas", Kind: "por-estado"})
	require.NoError(t, err)
	assert.Equal(t, dto.ReportGroup{Label: "ES", Count: 2}, rep.Groups[0])

	rep, err = uc.Generate(ctx, dto.ReportRequest{Category: "igrejas", Kind: "estatisticas"})
	require.NoError(t, err)
	assert.Equal(t, "+50", rep.Rows[0][3])
	assert.Equal(t, "-10", rep.Rows[1][3])
	assert.Equal(t, "0", rep.Rows[2][3])
	assert.Equal(t, "190", rep.Totals["membrosAtuais"])
	assert.Equal(t, "+40", rep.Totals["crescimento"])

	rep, err = uc.Generate(ctx, dto.ReportRequest{Category: "igrejas", Kind: "por-classificacao"})
	require.NoError(t, err)
	assert.Equal(t, "Local", rep.Groups[0].Label)
}

func TestGenerate_Deposito(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()

	rep, err := uc.Generate(ctx, dto.ReportRequest{Category: "deposito", Kind: "estoque-baixo"})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "Bíblia", rep.Rows[0][0])
	assert.Equal(t, "10", rep.Rows[1][2])

	rep, err = uc.Generate(ctx, dto.ReportRequest{Category: "deposito", Kind: "valor-estoque"})
	require.NoError(t, err)
	assert.Equal(t, "Hinário", rep.Rows[0][0])
	assert.Equal(t, "R$ 820,00", rep.Totals["valorTotal"])

	rep, err = uc.Generate(ctx, dto.ReportRequest{Category: "deposito", Kind: "por-tipo"})
	require.NoError(t, err)
	assert.Equal(t, dto.ReportGroup{Label: entity.CategoryHinarios, Count: 2}, rep.Groups[0])
}

func TestGeneratePDF(t *testing.T) {
	r := &fakeRenderer{}
	b, rep, err := newTestUseCase(r).GeneratePDF(context.Background(), dto.ReportRequest{Category: "deposito", Kind: "todos-itens"})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), b)
	assert.Same(t, rep, r.report)

	_, _, err = newTestUseCase(&fakeRenderer{err: errors.New("fonte")}).GeneratePDF(context.Background(), dto.ReportRequest{Category: "deposito", Kind: "todos-itens"})
	assert.Error(t, err)
	_, _, err = newTestUseCase(nil).GeneratePDF(context.Background(), dto.ReportRequest{Category: "deposito", Kind: "todos-itens"})
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	cat := newTestUseCase(nil).Catalog()
	assert.Len(t, cat, 13)
	assert.Equal(t, dto.ReportKindDTO{Category: "membros", Kind: "todos", Label: "Todos os Membros"}, cat[0])
}
