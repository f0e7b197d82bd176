// Package report arma los reportes de miembros, igrejas y depósito como tablas con
// conteos agrupados, listos para JSON o PDF.
package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

// Categorías de reporte.
const (
	CategoryMembers   = "membros"
	CategoryChurches  = "igrejas"
	CategoryInventory = "deposito"
)

const notInformed = "Não informado"

type generator func(ctx context.Context, uc *UseCase, req dto.ReportRequest, now time.Time) (*dto.ReportDTO, error)

type kind struct {
	label string
	gen   generator
}

var catalog = map[string][]string{
	CategoryMembers:   {"todos", "por-funcao", "aniversariantes", "por-estado-civil", "batizados-periodo"},
	CategoryChurches:  {"todas", "por-classificacao", "por-estado", "estatisticas"},
	CategoryInventory: {"todos-itens", "estoque-baixo", "por-tipo", "valor-estoque"},
}

var kinds = map[string]kind{
	CategoryMembers + "/todos":              {"Todos os Membros", allMembers},
	CategoryMembers + "/por-funcao":         {"Membros por Função", membersByRole},
	CategoryMembers + "/aniversariantes":    {"Aniversariantes do Mês", birthdays},
	CategoryMembers + "/por-estado-civil":   {"Por Estado Civil", membersByMaritalStatus},
	CategoryMembers + "/batizados-periodo":  {"Batizados em Período", baptizedInPeriod},
	CategoryChurches + "/todas":             {"Todas as Igrejas", allChurches},
	CategoryChurches + "/por-classificacao": {"Por Classificação", churchesByClassification},
	CategoryChurches + "/por-estado":        {"Por Estado", churchesByState},
	CategoryChurches + "/estatisticas":      {"Estatísticas de Membros", churchStatistics},
	CategoryInventory + "/todos-itens":      {"Todos os Itens", allItems},
	CategoryInventory + "/estoque-baixo":    {"Estoque Baixo", lowStock},
	CategoryInventory + "/por-tipo":         {"Por Tipo de Mercadoria", itemsByCategory},
	CategoryInventory + "/valor-estoque":    {"Valor do Estoque", stockValue},
}

// UseCase genera reportes a partir de los registros.
type UseCase struct {
	members  repository.MemberRepository
	churches repository.ChurchRepository
	items    repository.InventoryItemRepository
	renderer ports.DocumentRenderer
	now      func() time.Time
}

// NewUseCase construye el caso de uso. renderer puede ser nil si no se exporta a PDF.
func NewUseCase(
	members repository.MemberRepository,
	churches repository.ChurchRepository,
	items repository.InventoryItemRepository,
	renderer ports.DocumentRenderer,
) *UseCase {
	return &UseCase{members: members, churches: churches, items: items, renderer: renderer, now: time.Now}
}

// Catalog lista los reportes disponibles.
func (uc *UseCase) Catalog() []dto.ReportKindDTO {
	out := make([]dto.ReportKindDTO, 0, len(kinds))
	for _, cat := range []string{CategoryMembers, CategoryChurches, CategoryInventory} {
		for _, k := range catalog[cat] {
			out = append(out, dto.ReportKindDTO{Category: cat, Kind: k, Label: kinds[cat+"/"+k].label})
		}
	}
	return out
}

// Generate arma el reporte pedido. Categoría o tipo desconocidos → ErrInvalidInput.
func (uc *UseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	k, ok := kinds[req.Category+"/"+req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: reporte %s/%s", domain.ErrInvalidInput, req.Category, req.Kind)
	}
	now := uc.now()
	rep, err := k.gen(ctx, uc, req, now)
	if err != nil {
		return nil, err
	}
	rep.Category = req.Category
	rep.Kind = req.Kind
	rep.GeneratedAt = now
	if rep.Rows == nil {
		rep.Rows = [][]string{}
	}
	return rep, nil
}

// GeneratePDF arma el reporte y lo entrega como PDF.
func (uc *UseCase) GeneratePDF(ctx context.Context, req dto.ReportRequest) ([]byte, *dto.ReportDTO, error) {
	if uc.renderer == nil {
		return nil, nil, fmt.Errorf("report: sin generador de PDF")
	}
	rep, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	b, err := uc.renderer.RenderReport(ctx, rep)
	if err != nil {
		return nil, nil, fmt.Errorf("report: pdf: %w", err)
	}
	return b, rep, nil
}

// ── Membros ───────────────────────────────────────────────────────────────────

func (uc *UseCase) sortedMembers(ctx context.Context) ([]*entity.Member, error) {
	list, err := uc.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: miembros: %w", err)
	}
	// la lista puede venir de la caché compartida: se ordena una copia
	sorted := make([]*entity.Member, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return textutil.Fold(sorted[i].FullName) < textutil.Fold(sorted[j].FullName)
	})
	return sorted, nil
}

func allMembers(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.sortedMembers(ctx)
	if err != nil {
		return nil, err
	}
	rep := &dto.ReportDTO{
		Title:   "Relatório - Todos os Membros",
		Columns: columns("nomeCompleto:Nome", "funcaoMinisterial:Função", "telefone:Telefone", "cidade:Cidade", "estado:Estado"),
	}
	for _, m := range list {
		rep.Rows = append(rep.Rows, []string{m.FullName, m.MinisterialRole, m.Phone, m.City, m.State})
	}
	rep.Totals = map[string]string{"membros": strconv.Itoa(len(list))}
	return rep, nil
}

func membersByRole(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.sortedMembers(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, m := range list {
		counts[orNotInformed(m.MinisterialRole)]++
	}
	return groupReport("Membros por Função Ministerial", "funcao:Função", counts), nil
}

func birthdays(ctx context.Context, uc *UseCase, req dto.ReportRequest, now time.Time) (*dto.ReportDTO, error) {
	month := time.Month(req.Month)
	if req.Month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: mes %d", domain.ErrInvalidInput, req.Month)
	}
	list, err := uc.sortedMembers(ctx)
	if err != nil {
		return nil, err
	}
	var hits []*entity.Member
	for _, m := range list {
		if m.BirthDate != nil && m.BirthDate.Month() == month {
			hits = append(hits, m)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].BirthDate.Day() < hits[j].BirthDate.Day() })

	rep := &dto.ReportDTO{
		Title:   fmt.Sprintf("Aniversariantes do Mês (%s)", textutil.MonthPT(month)),
		Columns: columns("nomeCompleto:Nome", "dataNascimento:Nascimento", "idade:Idade", "telefone:Telefone", "funcaoMinisterial:Função"),
	}
	for _, m := range hits {
		rep.Rows = append(rep.Rows, []string{
			m.FullName, m.BirthDate.Format("02/01"), strconv.Itoa(m.AgeAt(now)), m.Phone, m.MinisterialRole,
		})
	}
	return rep, nil
}

func membersByMaritalStatus(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.sortedMembers(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, m := range list {
		counts[orNotInformed(m.MaritalStatus)]++
	}
	return groupReport("Membros por Estado Civil", "estadoCivil:Estado Civil", counts), nil
}

// baptizedInPeriod usa [inicio, fim] inclusive; sin fechas toma el año en curso.
func baptizedInPeriod(ctx context.Context, uc *UseCase, req dto.ReportRequest, now time.Time) (*dto.ReportDTO, error) {
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	var err error
	if req.From != "" {
		if from, err = time.Parse("2006-01-02", req.From); err != nil {
			return nil, fmt.Errorf("%w: inicio", domain.ErrInvalidInput)
		}
	}
	if req.To != "" {
		if to, err = time.Parse("2006-01-02", req.To); err != nil {
			return nil, fmt.Errorf("%w: fim", domain.ErrInvalidInput)
		}
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: período invertido", domain.ErrInvalidInput)
	}
	list, err := uc.sortedMembers(ctx)
	if err != nil {
		return nil, err
	}
	var hits []*entity.Member
	for _, m := range list {
		if m.BaptismDate == nil {
			continue
		}
		d := civilDate(*m.BaptismDate)
		if !d.Before(from) && !d.After(to) {
			hits = append(hits, m)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].BaptismDate.Before(*hits[j].BaptismDate) })

	rep := &dto.ReportDTO{
		Title:   fmt.Sprintf("Batizados de %s a %s", from.Format("02/01/2006"), to.Format("02/01/2006")),
		Columns: columns("nomeCompleto:Nome", "dataBatismo:Batismo", "funcaoMinisterial:Função", "cidade:Cidade"),
	}
	for _, m := range hits {
		rep.Rows = append(rep.Rows, []string{m.FullName, m.BaptismDate.Format("02/01/2006"), m.MinisterialRole, m.City})
	}
	rep.Totals = map[string]string{"batizados": strconv.Itoa(len(hits))}
	return rep, nil
}

// ── Igrejas ───────────────────────────────────────────────────────────────────

func (uc *UseCase) listChurches(ctx context.Context) ([]*entity.Church, error) {
	list, err := uc.churches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: igrejas: %w", err)
	}
	return list, nil
}

func allChurches(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listChurches(ctx)
	if err != nil {
		return nil, err
	}
	rep := &dto.ReportDTO{
		Title:   "Relatório - Todas as Igrejas",
		Columns: columns("nomeIPDA:IPDA", "classificacao:Classificação", "tipoIPDA:Tipo", "membrosAtuais:Membros", "almasBatizadas:Almas Batizadas"),
	}
	for _, c := range list {
		rep.Rows = append(rep.Rows, []string{
			c.Name, c.Classification, c.Type, strconv.Itoa(c.CurrentMembers), strconv.Itoa(c.BaptizedSouls),
		})
	}
	return rep, nil
}

func churchesByClassification(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listChurches(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, c := range list {
		counts[orNotInformed(c.Classification)]++
	}
	return groupReport("Igrejas por Classificação", "classificacao:Classificação", counts), nil
}

func churchesByState(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listChurches(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, c := range list {
		counts[orNotInformed(strings.ToUpper(strings.TrimSpace(c.Address.State)))]++
	}
	return groupReport("Igrejas por Estado", "estado:Estado", counts), nil
}

func churchStatistics(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listChurches(ctx)
	if err != nil {
		return nil, err
	}
	rep := &dto.ReportDTO{
		Title: "Estatísticas de Membros por Igreja",
		Columns: columns("nomeIPDA:IPDA", "membrosIniciais:Iniciais", "membrosAtuais:Atuais",
			"crescimento:Crescimento", "almasBatizadas:Almas Batizadas"),
	}
	var initial, current, baptized int
	for _, c := range list {
		rep.Rows = append(rep.Rows, []string{
			c.Name,
			strconv.Itoa(c.InitialMembers),
			strconv.Itoa(c.CurrentMembers),
			signed(c.CurrentMembers - c.InitialMembers),
			strconv.Itoa(c.BaptizedSouls),
		})
		initial += c.InitialMembers
		current += c.CurrentMembers
		baptized += c.BaptizedSouls
	}
	rep.Totals = map[string]string{
		"membrosIniciais": strconv.Itoa(initial),
		"membrosAtuais":   strconv.Itoa(current),
		"crescimento":     signed(current - initial),
		"almasBatizadas":  strconv.Itoa(baptized),
	}
	return rep, nil
}

// ── Depósito ──────────────────────────────────────────────────────────────────

func (uc *UseCase) listItems(ctx context.Context) ([]*entity.InventoryItem, error) {
	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: depósito: %w", err)
	}
	return list, nil
}

func allItems(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listItems(ctx)
	if err != nil {
		return nil, err
	}
	rep := &dto.ReportDTO{
		Title: "Relatório - Todos os Itens do Depósito",
		Columns: columns("nome:Item", "categoria:Tipo de Mercadoria", "quantidadeEstoque:Estoque",
			"valorUnitario:Valor Unitário", "estoqueMinimo:Estoque Mínimo"),
	}
	for _, it := range list {
		rep.Rows = append(rep.Rows, []string{
			it.Name, it.Category, strconv.Itoa(it.Stock), textutil.FormatBRL(it.UnitPrice), strconv.Itoa(it.EffectiveMinimum()),
		})
	}
	return rep, nil
}

// lowStock incluye los ítems agotados: stock ≤ mínimo efectivo.
func lowStock(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listItems(ctx)
	if err != nil {
		return nil, err
	}
	rep := &dto.ReportDTO{
		Title:   "Relatório - Itens com Estoque Baixo",
		Columns: columns("nome:Item", "quantidadeEstoque:Estoque", "estoqueMinimo:Estoque Mínimo", "valorUnitario:Valor Unitário"),
	}
	for _, it := range list {
		if it.Stock <= it.EffectiveMinimum() {
			rep.Rows = append(rep.Rows, []string{
				it.Name, strconv.Itoa(it.Stock), strconv.Itoa(it.EffectiveMinimum()), textutil.FormatBRL(it.UnitPrice),
			})
		}
	}
	return rep, nil
}

func itemsByCategory(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listItems(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, it := range list {
		counts[orNotInformed(it.Category)]++
	}
	return groupReport("Itens por Tipo de Mercadoria", "tipo:Tipo de Mercadoria", counts), nil
}

func stockValue(ctx context.Context, uc *UseCase, _ dto.ReportRequest, _ time.Time) (*dto.ReportDTO, error) {
	list, err := uc.listItems(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]*entity.InventoryItem, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StockValue().GreaterThan(sorted[j].StockValue()) })

	rep := &dto.ReportDTO{
		Title: "Valor do Estoque",
		Columns: columns("nome:Item", "quantidadeEstoque:Estoque", "valorUnitario:Valor Unitário",
			"valorTotal:Valor Total"),
	}
	total := decimal.Zero
	for _, it := range sorted {
		v := it.StockValue()
		total = total.Add(v)
		rep.Rows = append(rep.Rows, []string{it.Name, strconv.Itoa(it.Stock), textutil.FormatBRL(it.UnitPrice), textutil.FormatBRL(v)})
	}
	rep.Totals = map[string]string{"valorTotal": textutil.FormatBRL(total)}
	return rep, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columns recibe pares "key:Label".
func columns(specs ...string) []dto.ReportColumn {
	out := make([]dto.ReportColumn, 0, len(specs))
	for _, s := range specs {
		key, label, _ := strings.Cut(s, ":")
		out = append(out, dto.ReportColumn{Key: key, Label: label})
	}
	return out
}

// groupReport ordena los grupos por cantidad descendente y, a igual cantidad, por nombre.
func groupReport(title, labelColumn string, counts map[string]int) *dto.ReportDTO {
	groups := make([]dto.ReportGroup, 0, len(counts))
	for label, n := range counts {
		groups = append(groups, dto.ReportGroup{Label: label, Count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Label < groups[j].Label
	})
	rep := &dto.ReportDTO{
		Title:   title,
		Columns: columns(labelColumn, "quantidade:Quantidade"),
		Groups:  groups,
	}
	total := 0
	for _, g := range groups {
		rep.Rows = append(rep.Rows, []string{g.Label, strconv.Itoa(g.Count)})
		total += g.Count
	}
	rep.Totals = map[string]string{"total": strconv.Itoa(total)}
	return rep
}

func orNotInformed(s string) string {
	if strings.TrimSpace(s) == "" {
		return notInformed
	}
	return s
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
